package web

type ScoreboardData struct {
	GameID string
	Label  string
	Sport  string
}

type YahtzeeData struct {
	GameID string
}
