package queue

import (
	"testing"
	"time"

	"tulook/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAvailabilityCountsOnlyWaitingMinutes(t *testing.T) {
	base := time.Date(2024, 5, 10, 16, 0, 0, 0, time.UTC)
	entries := []models.QueueEntry{
		entry("1", "Gonzalo", models.StatusServing, 45, base),
		entry("2", "Gonzalo", models.StatusWaiting, 30, base.Add(time.Minute)),
		entry("3", "Gonzalo", models.StatusWaiting, 15, base.Add(2*time.Minute)),
		entry("4", "Lautaro", models.StatusWaiting, 30, base.Add(3*time.Minute)),
		entry("5", "Gonzalo", models.StatusDone, 30, base.Add(4*time.Minute)),
	}

	a := AvailabilityFor("Gonzalo", entries)
	assert.Equal(t, 2, a.Waiting)
	assert.True(t, a.Serving)
	assert.Equal(t, 45, a.WaitMinutes)
	assert.False(t, a.Busy)

	l := AvailabilityFor("Lautaro", entries)
	assert.Equal(t, 1, l.Waiting)
	assert.False(t, l.Serving)
	assert.Equal(t, 30, l.WaitMinutes)

	j := AvailabilityFor("Julián", entries)
	assert.Equal(t, Availability{Barber: "Julián"}, j)
}

func TestAvailabilityBusyAboveThreshold(t *testing.T) {
	base := time.Now().UTC()
	var entries []models.QueueEntry
	for i := 0; i < BusyThreshold+1; i++ {
		entries = append(entries, entry(string(rune('a'+i)), "Julián", models.StatusWaiting, 15, base.Add(time.Duration(i)*time.Second)))
	}

	assert.True(t, AvailabilityFor("Julián", entries).Busy)
	assert.False(t, AvailabilityFor("Julián", entries[:BusyThreshold]).Busy)
}

func TestCountByBarberFollowsCatalog(t *testing.T) {
	base := time.Now().UTC()
	out := CountByBarber([]models.QueueEntry{
		entry("1", "Lautaro", models.StatusWaiting, 30, base),
	})

	if assert.Len(t, out, len(models.Barbers)) {
		for i, b := range models.Barbers {
			assert.Equal(t, b.Name, out[i].Barber)
		}
		assert.Equal(t, 1, out[1].Waiting)
	}
}

func TestBuildBoardOrdersByArrival(t *testing.T) {
	base := time.Date(2024, 5, 10, 16, 0, 0, 0, time.UTC)
	entries := []models.QueueEntry{
		entry("c", "Julián", models.StatusWaiting, 15, base.Add(2*time.Minute)),
		entry("a", "Gonzalo", models.StatusServing, 30, base),
		entry("d", "Gonzalo", models.StatusDone, 30, base.Add(-time.Hour)),
		entry("b", "Lautaro", models.StatusWaiting, 45, base.Add(time.Minute)),
	}

	board := BuildBoard(entries)
	if assert.Len(t, board.Rows, 3) {
		assert.Equal(t, "a", board.Rows[0].ID)
		assert.Equal(t, 1, board.Rows[0].Position)
		assert.True(t, board.Rows[0].Serving)
		assert.Equal(t, "b", board.Rows[1].ID)
		assert.Equal(t, 2, board.Rows[1].Position)
		assert.Equal(t, "c", board.Rows[2].ID)
		assert.False(t, board.Rows[2].Serving)
		assert.Equal(t, "Corte", board.Rows[2].ServiceLabel)
	}
	assert.Equal(t, 2, board.Waiting)
	assert.Equal(t, 60, board.WaitMinutes)
}

func TestBoardAndAvailabilityAgree(t *testing.T) {
	base := time.Now().UTC()
	entries := []models.QueueEntry{
		entry("1", "Gonzalo", models.StatusServing, 30, base),
		entry("2", "Gonzalo", models.StatusWaiting, 45, base.Add(time.Second)),
		entry("3", "Lautaro", models.StatusWaiting, 15, base.Add(2*time.Second)),
	}

	board := BuildBoard(entries)
	var waiting, minutes int
	for _, a := range CountByBarber(entries) {
		waiting += a.Waiting
		minutes += a.WaitMinutes
	}
	assert.Equal(t, board.Waiting, waiting)
	assert.Equal(t, board.WaitMinutes, minutes)
}
