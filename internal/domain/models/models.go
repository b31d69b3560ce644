package models

type Movie struct {
	ID       int64  `json:"id" db:"id"`             // Unique integer ID for the movie, never reused
	Title    string `json:"title" db:"title"`       // Movie title
	Director string `json:"director" db:"director"` // Director name, shared by every movie of that director
	Year     int32  `json:"year" db:"year"`         // Movie release year
}

// MoviePatch holds a partial update. Zero values leave the stored field untouched.
type MoviePatch struct {
	Title    string
	Director string
	Year     int32
}

// Apply overwrites the fields of m that are set in the patch.
func (p MoviePatch) Apply(m *Movie) {
	if p.Title != "" {
		m.Title = p.Title
	}
	if p.Director != "" {
		m.Director = p.Director
	}
	if p.Year != 0 {
		m.Year = p.Year
	}
}

type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
}
