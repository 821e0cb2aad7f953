package constants

// Status de inscrição. "Completed" nunca é persistido: é derivado da data do
// evento na hora da leitura.
const (
	EnrollmentStatusEnrolled  = "Enrolled"
	EnrollmentStatusCompleted = "Completed"
)

// Fallbacks usados pelo motor de agregação.
const (
	AnonymousVolunteerName = "Anonymous"
	OtherCategoryLabel     = "Other"
	NoFavoriteCause        = "---"
)
