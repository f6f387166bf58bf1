package resume

// ATSSections breaks the simulated ATS compatibility score down per
// resume section, each 0-100.
type ATSSections struct {
	Format     int
	Keywords   int
	Skills     int
	Experience int
}

// ATSScore is the fabricated applicant-tracking-system score attached to
// a parsed resume. It is produced by the parsing collaborator, never
// computed here.
type ATSScore struct {
	Overall  int // 0-100
	Sections ATSSections
	Feedback []string
}

// Parsed holds the term sets extracted from an uploaded resume. It has no
// identity; a new value replaces the previous one on every upload.
type Parsed struct {
	Skills     []string
	Experience []string
	Education  []string
	Keywords   []string
	ATS        *ATSScore
}
