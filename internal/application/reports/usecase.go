// Package reports contiene el caso de uso que genera reportes del ledger a demanda.
package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/access"
	"github.com/jhoicas/ledger-api/internal/domain/daterange"
	"github.com/jhoicas/ledger-api/internal/domain/report"
	"github.com/jhoicas/ledger-api/internal/domain/repository"
	"github.com/jhoicas/ledger-api/pkg/logger"
)

// ReportUseCase autoriza, resuelve el rango, lee un snapshot y agrega.
//
// "Hoy" se calcula con el reloj inyectado en la zona horaria del negocio, nunca en la del servidor.
type ReportUseCase struct {
	ledger repository.LedgerReader
	loc    *time.Location
	now    func() time.Time
	log    *logger.Logger
}

// Option personaliza el caso de uso (tests).
type Option func(*ReportUseCase)

// WithClock reemplaza time.Now.
func WithClock(now func() time.Time) Option {
	return func(uc *ReportUseCase) { uc.now = now }
}

// NewReportUseCase construye el caso de uso. loc nil equivale a UTC.
func NewReportUseCase(ledger repository.LedgerReader, loc *time.Location, log *logger.Logger, opts ...Option) *ReportUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Nop()
	}
	uc := &ReportUseCase{ledger: ledger, loc: loc, now: time.Now, log: log.Component("reports")}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Generate arma el reporte reportType para p.
//
// El permiso se evalúa antes de tocar el almacenamiento: ante una denegación no se lee nada.
func (uc *ReportUseCase) Generate(
	ctx context.Context,
	p *access.Principal,
	reportType string,
	req dto.ReportRequest,
) (*report.View, error) {
	t, err := report.ParseType(reportType)
	if err != nil {
		return nil, err
	}

	if required := t.Required(); !access.Authorize(p, required) {
		uc.log.Warn().
			Str("user_id", p.UserID()).
			Str("report", string(t)).
			Str("required", required.String()).
			Msg("reporte denegado")
		return nil, fmt.Errorf("report %s: %w", t, domain.ErrPermissionDenied)
	}

	// ── Rango de fechas ───────────────────────────────────────────────────────
	today := daterange.Day(uc.now().In(uc.loc))
	rng := uc.resolveRange(req, today)

	// ── Snapshot ──────────────────────────────────────────────────────────────
	rs, err := uc.ledger.Snapshot(ctx, snapshotQuery(t, rng))
	if err != nil {
		return nil, fmt.Errorf("report %s: snapshot: %w", t, err)
	}

	// ── Agregación ────────────────────────────────────────────────────────────
	view, err := report.Aggregate(rs, report.Filter{
		Range:   rng,
		PartyID: req.PartyID,
		Sort:    report.SortKey(req.Sort),
		Types:   req.Types(),
		AsOf:    today,
	}, t)
	if err != nil {
		return nil, err
	}

	for _, a := range view.Anomalies {
		uc.log.Warn().
			Str("report", string(t)).
			Str("record_id", a.RecordID).
			Str("kind", a.Kind).
			Str("value", a.Value.String()).
			Msg("dato inconsistente corregido en el reporte")
	}
	uc.log.Debug().
		Str("user_id", p.UserID()).
		Str("report", string(t)).
		Int("rows", len(view.Rows)).
		Msg("reporte generado")
	return view, nil
}

// resolveRange aplica el preset. Sin preset pero con fechas explícitas se asume custom.
// Una fecha que no se puede leer deja ese extremo abierto.
func (uc *ReportUseCase) resolveRange(req dto.ReportRequest, today time.Time) daterange.Range {
	preset := daterange.ParsePreset(req.Preset)
	if strings.TrimSpace(req.Preset) == "" && (req.StartDate != "" || req.EndDate != "") {
		preset = daterange.PresetCustom
	}

	var custom daterange.Range
	if preset == daterange.PresetCustom {
		custom.Start = uc.parseBound(req.StartDate, "start_date")
		custom.End = uc.parseBound(req.EndDate, "end_date")
	}
	return daterange.Resolve(preset, today, custom)
}

func (uc *ReportUseCase) parseBound(s, field string) *time.Time {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	d, err := daterange.ParseDate(s, uc.loc)
	if err != nil {
		uc.log.Warn().Str("field", field).Str("value", s).Msg("fecha ilegible, se deja el extremo abierto")
		return nil
	}
	return &d
}

// snapshotQuery secciones que lee cada reporte. El de contrapartes muestra el saldo actual,
// por eso ignora el rango.
func snapshotQuery(t report.Type, rng daterange.Range) repository.SnapshotQuery {
	switch t {
	case report.TypeOutstanding:
		return repository.SnapshotQuery{
			Sections: repository.SectionInvoices | repository.SectionTransactions | repository.SectionParties,
			Range:    rng,
		}
	case report.TypeInvoices:
		return repository.SnapshotQuery{Sections: repository.SectionInvoices | repository.SectionParties, Range: rng}
	case report.TypeParties:
		return repository.SnapshotQuery{
			Sections: repository.SectionInvoices | repository.SectionTransactions | repository.SectionParties,
		}
	case report.TypeTransactions:
		return repository.SnapshotQuery{Sections: repository.SectionTransactions, Range: rng}
	case report.TypeInventory:
		return repository.SnapshotQuery{Sections: repository.SectionMovements, Range: rng}
	default:
		return repository.SnapshotQuery{Sections: repository.SectionAll, Range: rng}
	}
}
