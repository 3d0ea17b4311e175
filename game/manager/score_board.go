package manager

import (
	"sync"
	"time"

	"gridsnake/game/types"
)

// Number of finished sessions kept in the history
const maxScores = 50

// GameRecord describes one finished session
type GameRecord struct {
	SessionID string
	Score     int
	Length    int
	Collision types.CollisionType
	StartTime time.Time
	EndTime   time.Time
}

// Duration returns how long the session lasted
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// ScoreBoard keeps in-process results of finished sessions. Nothing is
// written to disk; results are gone when the process exits.
type ScoreBoard struct {
	mutex       sync.RWMutex
	records     []GameRecord
	highScore   int
	gamesPlayed int
}

func NewScoreBoard() *ScoreBoard {
	return &ScoreBoard{
		records: make([]GameRecord, 0, maxScores),
	}
}

// Record adds a finished session and reports whether it set a new high score
func (sb *ScoreBoard) Record(rec GameRecord) bool {
	sb.mutex.Lock()
	defer sb.mutex.Unlock()

	if len(sb.records) >= maxScores {
		sb.records = sb.records[1:]
	}
	sb.records = append(sb.records, rec)
	sb.gamesPlayed++

	if rec.Score > sb.highScore {
		sb.highScore = rec.Score
		return true
	}
	return false
}

func (sb *ScoreBoard) HighScore() int {
	sb.mutex.RLock()
	defer sb.mutex.RUnlock()
	return sb.highScore
}

func (sb *ScoreBoard) GamesPlayed() int {
	sb.mutex.RLock()
	defer sb.mutex.RUnlock()
	return sb.gamesPlayed
}

// AverageScore is computed over the kept history
func (sb *ScoreBoard) AverageScore() float64 {
	sb.mutex.RLock()
	defer sb.mutex.RUnlock()

	if len(sb.records) == 0 {
		return 0
	}
	sum := 0
	for _, r := range sb.records {
		sum += r.Score
	}
	return float64(sum) / float64(len(sb.records))
}

// History returns a copy of the kept records, oldest first
func (sb *ScoreBoard) History() []GameRecord {
	sb.mutex.RLock()
	defer sb.mutex.RUnlock()

	out := make([]GameRecord, len(sb.records))
	copy(out, sb.records)
	return out
}
