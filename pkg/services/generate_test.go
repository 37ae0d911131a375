package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/crossguard/crossguard/internal/config"
)

const testRoster = `
persons:
  - name: ada
    weight: 1
    weekdays: [mo, tu, we]
    alwaysSameWorkday: false
  - name: bob
    weight: 1
    weekdays: [th, fr]
    alwaysSameWorkday: false
`

func writeRoster(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testRoster), 0o644))
	return path
}

func testConfig() *config.Config {
	return &config.Config{
		ActiveWeekdays: []string{"mo", "tu", "we", "th", "fr"},
		Seed:           12345,
		Cycles:         8,
	}
}

func TestGenerate_Dates(t *testing.T) {
	out, err := Generate(context.Background(), nil, zap.NewNop(), GenerateInput{
		Config:     testConfig(),
		RosterPath: writeRoster(t),
		FirstDate:  "01.06.2026",
		LastDate:   "07.06.2026",
		Format:     FormatDates,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, out.Result.AssignedCount)
	assert.Equal(t, 0, out.Result.FailCount)
	assert.Contains(t, out.Rendered, "01.06.2026: ada")
	assert.Contains(t, out.Rendered, "04.06.2026: bob")
	assert.Empty(t, out.ScheduleID)
}

func TestGenerate_DefaultFormatIsDates(t *testing.T) {
	in := GenerateInput{
		Config:     testConfig(),
		RosterPath: writeRoster(t),
		FirstDate:  "01.06.2026",
		LastDate:   "07.06.2026",
	}

	out, err := Generate(context.Background(), nil, zap.NewNop(), in)
	require.NoError(t, err)

	in.Format = FormatDates
	explicit, err := Generate(context.Background(), nil, zap.NewNop(), in)
	require.NoError(t, err)

	assert.Equal(t, explicit.Rendered, out.Rendered)
}

func TestGenerate_AllFormats(t *testing.T) {
	for _, format := range []string{FormatDates, FormatPersons, FormatCalendar, FormatHTML, FormatRoster} {
		t.Run(format, func(t *testing.T) {
			out, err := Generate(context.Background(), nil, zap.NewNop(), GenerateInput{
				Config:     testConfig(),
				RosterPath: writeRoster(t),
				FirstDate:  "01.06.2026",
				LastDate:   "07.06.2026",
				Format:     format,
			})
			require.NoError(t, err)
			assert.NotEmpty(t, out.Rendered)
		})
	}
}

func TestGenerate_RosterFormatRoundTrips(t *testing.T) {
	out, err := Generate(context.Background(), nil, zap.NewNop(), GenerateInput{
		Config:     testConfig(),
		RosterPath: writeRoster(t),
		FirstDate:  "01.06.2026",
		LastDate:   "07.06.2026",
		Format:     FormatRoster,
	})
	require.NoError(t, err)

	// the rendered roster carries the new assignments
	assert.Contains(t, out.Rendered, "name: ada")
	assert.Contains(t, out.Rendered, "assignedDays:")
	assert.Contains(t, out.Rendered, "01.06.2026")
}

func TestGenerate_UnknownFormat(t *testing.T) {
	_, err := Generate(context.Background(), nil, zap.NewNop(), GenerateInput{
		Config:     testConfig(),
		RosterPath: writeRoster(t),
		FirstDate:  "01.06.2026",
		LastDate:   "07.06.2026",
		Format:     "pdf",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "pdf"`)
}

func TestGenerate_BadPeriod(t *testing.T) {
	in := GenerateInput{
		Config:     testConfig(),
		RosterPath: writeRoster(t),
		FirstDate:  "31.02.2026",
		LastDate:   "07.06.2026",
	}
	_, err := Generate(context.Background(), nil, zap.NewNop(), in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start date")

	in.FirstDate = "08.06.2026"
	in.LastDate = "01.06.2026"
	_, err = Generate(context.Background(), nil, zap.NewNop(), in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ends before it starts")
}

func TestGenerate_EmptyRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("persons: []\n"), 0o644))

	_, err := Generate(context.Background(), nil, zap.NewNop(), GenerateInput{
		Config:     testConfig(),
		RosterPath: path,
		FirstDate:  "01.06.2026",
		LastDate:   "07.06.2026",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contains no persons")
}

func TestGenerate_SaveWithoutDatabase(t *testing.T) {
	_, err := Generate(context.Background(), nil, zap.NewNop(), GenerateInput{
		Config:     testConfig(),
		RosterPath: writeRoster(t),
		FirstDate:  "01.06.2026",
		LastDate:   "07.06.2026",
		Save:       true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no databaseURL configured")
}

func TestHistory_WithoutDatabase(t *testing.T) {
	_, err := History(context.Background(), nil, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no databaseURL configured")

	_, err = ShowSchedule(context.Background(), nil, "some-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no databaseURL configured")
}
