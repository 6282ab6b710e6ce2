package invasion

// Stats tracks the state of the current game and the session high score.
type Stats struct {
	Score     int
	HighScore int // Never decreases; survives Reset
	ShipsLeft int
	Level     int

	Active         bool
	PointerVisible bool
}

// NewStats creates stats for a session that has not started a game yet.
func NewStats(shipLimit int) Stats {
	st := Stats{PointerVisible: true}
	st.Reset(shipLimit)
	return st
}

// Reset prepares the stats for a new game. The high score is kept.
func (st *Stats) Reset(shipLimit int) {
	st.Score = 0
	st.ShipsLeft = shipLimit
	st.Level = 1
}

// AddScore adds points and raises the high score if it was beaten.
func (st *Stats) AddScore(points int) {
	if points <= 0 {
		return
	}
	st.Score += points
	if st.Score > st.HighScore {
		st.HighScore = st.Score
	}
}
