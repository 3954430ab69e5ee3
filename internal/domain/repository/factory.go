package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Operations() OperationRepository
	Steps() StepRepository
	Documents() DocumentRepository
	Comments() CommentRepository
}
