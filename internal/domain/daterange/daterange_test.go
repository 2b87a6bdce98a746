package daterange_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ledger-api/internal/domain/daterange"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func assertRange(t *testing.T, r daterange.Range, start, end time.Time) {
	t.Helper()
	require.NotNil(t, r.Start)
	require.NotNil(t, r.End)
	assert.True(t, start.Equal(*r.Start), "start esperado %s, obtenido %s", start, *r.Start)
	assert.True(t, end.Equal(*r.End), "end esperado %s, obtenido %s", end, *r.End)
}

// 2024-01-10 es miércoles → la semana empieza el lunes 2024-01-08.
func TestResolve_ThisWeek_Miercoles(t *testing.T) {
	r := daterange.Resolve(daterange.PresetThisWeek, date(2024, 1, 10), daterange.Range{})
	assertRange(t, r, date(2024, 1, 8), date(2024, 1, 10))
}

// Domingo pertenece a la semana ISO que empezó seis días antes.
func TestResolve_ThisWeek_Domingo(t *testing.T) {
	r := daterange.Resolve(daterange.PresetThisWeek, date(2024, 1, 14), daterange.Range{})
	assertRange(t, r, date(2024, 1, 8), date(2024, 1, 14))
}

func TestResolve_ThisWeek_Lunes(t *testing.T) {
	r := daterange.Resolve(daterange.PresetThisWeek, date(2024, 1, 8), daterange.Range{})
	assertRange(t, r, date(2024, 1, 8), date(2024, 1, 8))
}

func TestResolve_TodayYesterday(t *testing.T) {
	now := time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)

	assertRange(t, daterange.Resolve(daterange.PresetToday, now, daterange.Range{}), date(2024, 3, 1), date(2024, 3, 1))
	// cruza el fin de febrero bisiesto
	assertRange(t, daterange.Resolve(daterange.PresetYesterday, now, daterange.Range{}), date(2024, 2, 29), date(2024, 2, 29))
}

func TestResolve_ThisMonth(t *testing.T) {
	r := daterange.Resolve(daterange.PresetThisMonth, date(2024, 2, 17), daterange.Range{})
	assertRange(t, r, date(2024, 2, 1), date(2024, 2, 17))
}

func TestResolve_AllYDesconocido_Abierto(t *testing.T) {
	assert.True(t, daterange.Resolve(daterange.PresetAll, date(2024, 1, 1), daterange.Range{}).Unbounded())
	assert.True(t, daterange.Resolve(daterange.ParsePreset("next_year"), date(2024, 1, 1), daterange.Range{}).Unbounded())
	assert.True(t, daterange.Resolve(daterange.ParsePreset(""), date(2024, 1, 1), daterange.Range{}).Unbounded())
}

func TestResolve_Custom(t *testing.T) {
	s, e := date(2023, 12, 1), date(2023, 12, 31)
	r := daterange.Resolve(daterange.PresetCustom, date(2024, 1, 1), daterange.Range{Start: &s, End: &e})
	assertRange(t, r, s, e)

	// custom sin extremos → abierto (no es un error)
	assert.True(t, daterange.Resolve(daterange.PresetCustom, date(2024, 1, 1), daterange.Range{}).Unbounded())
}

func TestParsePreset(t *testing.T) {
	assert.Equal(t, daterange.PresetThisWeek, daterange.ParsePreset(" THIS_WEEK "))
	assert.Equal(t, daterange.PresetCustom, daterange.ParsePreset("custom"))
	assert.Equal(t, daterange.PresetAll, daterange.ParsePreset("all"))
}

func TestRange_Contains(t *testing.T) {
	s, e := date(2024, 1, 8), date(2024, 1, 10)
	r := daterange.Range{Start: &s, End: &e}

	assert.True(t, r.Contains(time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)), "el último día es inclusivo")
	assert.True(t, r.Contains(date(2024, 1, 8)))
	assert.False(t, r.Contains(date(2024, 1, 7)))
	assert.False(t, r.Contains(date(2024, 1, 11)))

	open := daterange.Range{Start: &s}
	assert.True(t, open.Contains(date(2030, 1, 1)))
	assert.True(t, daterange.Range{}.Contains(date(1990, 1, 1)))
}

func TestParseDate(t *testing.T) {
	d, err := daterange.ParseDate("2024-01-10", nil)
	require.NoError(t, err)
	assert.True(t, date(2024, 1, 10).Equal(d))

	_, err = daterange.ParseDate("10/01/2024", time.UTC)
	assert.Error(t, err)
}

// Una fecha DATE leída en UTC entra en el "hoy" resuelto en otra zona.
func TestRange_Contains_ZonasDistintas(t *testing.T) {
	loc := time.FixedZone("GST", 4*3600)
	today := time.Date(2024, 1, 10, 0, 0, 0, 0, loc)
	r := daterange.Resolve(daterange.PresetToday, today, daterange.Range{})

	assert.True(t, r.Contains(date(2024, 1, 10)))
	assert.False(t, r.Contains(date(2024, 1, 9)))
}
