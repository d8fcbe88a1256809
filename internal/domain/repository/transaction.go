// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// One transaction is the unit-of-work of a single request: the use case
// layer runs all of its persistence operations inside Execute and never
// sees a partially committed state.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// AboutRepo returns an AboutRepository bound to the current transaction.
	AboutRepo() AboutRepository

	// ContactRepo returns a ContactRepository bound to the current transaction.
	ContactRepo() ContactRepository

	// ExperienceRepo returns an ExperienceRepository bound to the current transaction.
	ExperienceRepo() ExperienceRepository

	// ProjectRepo returns a ProjectRepository bound to the current transaction.
	ProjectRepo() ProjectRepository

	// SkillRepo returns a SkillRepository bound to the current transaction.
	SkillRepo() SkillRepository

	// ToolRepo returns a ToolRepository bound to the current transaction.
	ToolRepo() ToolRepository

	// TrainingRepo returns a TrainingRepository bound to the current transaction.
	TrainingRepo() TrainingRepository
}
