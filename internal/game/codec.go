package game

import (
	"encoding/json"

	"github.com/ametelin/blockfall/internal/grid"
	"github.com/ametelin/blockfall/internal/piece"
)

// codecVersion tags the wire format. The layout is a private contract
// between Encode and Decode; the only external guarantee is that every
// persisted field round-trips.
const codecVersion = "1"

type savedShape struct {
	Kind  string       `json:"kind"`
	Cells []grid.Point `json:"cells"`
}

type savedGame struct {
	Version string       `json:"version"`
	Score   int          `json:"score"`
	Lines   int          `json:"lines"`
	Grid    []grid.Point `json:"grid"`
	Active  savedShape   `json:"active"`
	Next    savedShape   `json:"next"`
	Pos     Position     `json:"position"`
	Seed    int64        `json:"seed"`
}

// Fields are pointers so Decode can tell "absent or unparseable" from a
// legitimate zero and keep the fallback value for just that field.
type loadedGame struct {
	Score  *int          `json:"score"`
	Lines  *int          `json:"lines"`
	Grid   *[]grid.Point `json:"grid"`
	Active *savedShape   `json:"active"`
	Next   *savedShape   `json:"next"`
	Pos    *struct {
		Col *int     `json:"col"`
		Row *float64 `json:"row"`
	} `json:"position"`
	Seed *int64 `json:"seed"`
}

// Encode serializes everything a resumed game needs into a string.
func Encode(s State) string {
	doc := savedGame{
		Version: codecVersion,
		Score:   s.Score,
		Lines:   s.Lines,
		Grid:    s.Grid.Points(),
		Active:  savedShape{Kind: string(s.Active.Kind), Cells: s.Active.Cells},
		Next:    savedShape{Kind: string(s.Next.Kind), Cells: s.Next.Cells},
		Pos:     s.Pos,
		Seed:    s.Seed,
	}
	out, err := json.Marshal(doc)
	if err != nil {
		// Nothing in savedGame can fail to marshal; keep the save
		// best-effort regardless.
		return ""
	}
	return string(out)
}

// Decode restores persisted fields into fallback. Empty or malformed
// input returns fallback unchanged; a partially valid document replaces
// only the fields that parse. The score and line counters never move
// backward past their fallback through a load alone.
func Decode(raw string, fallback State) State {
	if raw == "" {
		return fallback
	}

	var doc loadedGame
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return fallback
	}

	s := fallback
	if doc.Score != nil && *doc.Score >= 0 {
		s.Score = *doc.Score
	}
	if doc.Lines != nil && *doc.Lines >= 0 {
		s.Lines = *doc.Lines
	}
	if doc.Grid != nil {
		s.Grid = grid.FromPoints(*doc.Grid)
	}
	if sh, ok := decodeShape(doc.Active); ok {
		s.Active = sh
	}
	if sh, ok := decodeShape(doc.Next); ok {
		s.Next = sh
	}
	if doc.Pos != nil {
		if doc.Pos.Col != nil {
			s.Pos.Col = *doc.Pos.Col
		}
		if doc.Pos.Row != nil {
			s.Pos.Row = *doc.Pos.Row
		}
	}
	if doc.Seed != nil {
		s.Seed = *doc.Seed
	}
	return s
}

// decodeShape accepts a shape only if its kind is known and its cells are
// present; the cells carry the orientation, so both are required.
func decodeShape(sh *savedShape) (piece.Shape, bool) {
	if sh == nil || len(sh.Cells) == 0 {
		return piece.Shape{}, false
	}
	if _, ok := piece.ByKind(piece.Kind(sh.Kind)); !ok {
		return piece.Shape{}, false
	}
	return piece.Shape{Kind: piece.Kind(sh.Kind), Cells: sh.Cells}, true
}
