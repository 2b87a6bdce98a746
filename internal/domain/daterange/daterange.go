// Package daterange resuelve presets de fecha ("today", "this_week", ...) en rangos concretos.
// Nunca lee el reloj: "hoy" siempre llega como argumento.
package daterange

import (
	"strings"
	"time"
)

// Preset atajo de rango de fechas.
type Preset string

// Presets soportados.
const (
	PresetAll       Preset = "all"
	PresetToday     Preset = "today"
	PresetYesterday Preset = "yesterday"
	PresetThisWeek  Preset = "this_week"
	PresetThisMonth Preset = "this_month"
	PresetCustom    Preset = "custom"
)

// DateLayout formato de fecha en query params y JSON.
const DateLayout = "2006-01-02"

// ParsePreset normaliza el token; vacío o desconocido es PresetAll (sin restricción).
func ParsePreset(s string) Preset {
	switch p := Preset(strings.ToLower(strings.TrimSpace(s))); p {
	case PresetToday, PresetYesterday, PresetThisWeek, PresetThisMonth, PresetCustom:
		return p
	default:
		return PresetAll
	}
}

// Range intervalo de días inclusivo. Un extremo nil es abierto.
type Range struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

// Unbounded informa si el rango no restringe nada.
func (r Range) Unbounded() bool {
	return r.Start == nil && r.End == nil
}

// Contains compara por día calendario, inclusivo en ambos extremos.
// La hora de t se ignora: una factura de las 23:59 del último día entra en el rango.
// Cada fecha se lee en su propia zona: una fecha DATE de la base (UTC) y un "hoy" en la zona
// del negocio se comparan por año, mes y día.
func (r Range) Contains(t time.Time) bool {
	day := civil(t)
	if r.Start != nil && day < civil(*r.Start) {
		return false
	}
	if r.End != nil && day > civil(*r.End) {
		return false
	}
	return true
}

func civil(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

// Day trunca t a medianoche en su propia zona horaria.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDate interpreta "YYYY-MM-DD" en loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
}

// Resolve convierte el preset en un rango concreto respecto de today.
// Con PresetCustom devuelve custom tal cual; si no trae extremos el resultado queda abierto
// (equivalente a "all"), de forma deliberadamente permisiva.
func Resolve(p Preset, today time.Time, custom Range) Range {
	today = Day(today)
	switch p {
	case PresetToday:
		return between(today, today)
	case PresetYesterday:
		y := today.AddDate(0, 0, -1)
		return between(y, y)
	case PresetThisWeek:
		return between(MondayOf(today), today)
	case PresetThisMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return between(first, today)
	case PresetCustom:
		return custom
	default:
		return Range{}
	}
}

// MondayOf devuelve el lunes de la semana ISO de t.
func MondayOf(t time.Time) time.Time {
	wd := int(t.Weekday())
	offset := 1 - wd
	if t.Weekday() == time.Sunday {
		offset = -6
	}
	return Day(t).AddDate(0, 0, offset)
}

func between(start, end time.Time) Range {
	return Range{Start: &start, End: &end}
}
