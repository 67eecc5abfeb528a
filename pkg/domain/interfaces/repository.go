package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Assessment() AssessmentRepository
	Template() TemplateRepository
	User() UserRepository
	Organization() OrganizationRepository

	// Close releases any resources held by the backend
	Close() error
}
