package impl

import (
	"context"
	"strings"
	"time"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
)

// In-memory fakes standing in for the persistence and crypto layers.
// The transaction manager runs the callback directly against the fake
// factory, so service logic is exercised without a database.

type fakeTxManager struct {
	factory *fakeRepoFactory
	err     error
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.err != nil {
		return m.err
	}

	return fn(m.factory)
}

type fakeRepoFactory struct {
	aboutRepo      repository.AboutRepository
	contactRepo    repository.ContactRepository
	experienceRepo repository.ExperienceRepository
	projectRepo    repository.ProjectRepository
	skillRepo      repository.SkillRepository
	toolRepo       repository.ToolRepository
	trainingRepo   repository.TrainingRepository
}

func (f *fakeRepoFactory) AboutRepo() repository.AboutRepository           { return f.aboutRepo }
func (f *fakeRepoFactory) ContactRepo() repository.ContactRepository       { return f.contactRepo }
func (f *fakeRepoFactory) ExperienceRepo() repository.ExperienceRepository { return f.experienceRepo }
func (f *fakeRepoFactory) ProjectRepo() repository.ProjectRepository       { return f.projectRepo }
func (f *fakeRepoFactory) SkillRepo() repository.SkillRepository           { return f.skillRepo }
func (f *fakeRepoFactory) ToolRepo() repository.ToolRepository             { return f.toolRepo }
func (f *fakeRepoFactory) TrainingRepo() repository.TrainingRepository     { return f.trainingRepo }

// --- hasher and token service ---

type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct {
	issuedSubject string
	issuedID      int64
	issuedTTL     time.Duration
	issueErr      error

	verifyClaims *service.Claims
	verifyErr    error
}

func (s *fakeTokenService) Issue(subject string, accountID int64, ttl time.Duration) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	s.issuedSubject = subject
	s.issuedID = accountID
	s.issuedTTL = ttl

	return "token-for-" + subject, nil
}

func (s *fakeTokenService) Verify(string) (*service.Claims, error) {
	if s.verifyErr != nil {
		return nil, s.verifyErr
	}

	return s.verifyClaims, nil
}

// --- repositories ---

type fakeAboutRepo struct {
	records map[int64]*entity.About
	nextID  int64
}

func newFakeAboutRepo() *fakeAboutRepo {
	return &fakeAboutRepo{records: map[int64]*entity.About{}, nextID: 1}
}

func (r *fakeAboutRepo) First(context.Context) (*entity.About, error) {
	var first *entity.About
	for _, a := range r.records {
		if first == nil || a.ID < first.ID {
			first = a
		}
	}
	if first == nil {
		return nil, repository.ErrAboutNotFound
	}

	return first, nil
}

func (r *fakeAboutRepo) FindByID(_ context.Context, id int64) (*entity.About, error) {
	a, ok := r.records[id]
	if !ok {
		return nil, repository.ErrAboutNotFound
	}

	return a, nil
}

func (r *fakeAboutRepo) FindByIdentifier(_ context.Context, identifier string) (*entity.About, error) {
	for _, a := range r.records {
		if a.Name == identifier || strings.EqualFold(a.Email, identifier) {
			return a, nil
		}
	}

	return nil, repository.ErrAboutNotFound
}

func (r *fakeAboutRepo) Create(_ context.Context, about *entity.About) error {
	about.ID = r.nextID
	r.nextID++
	now := time.Now()
	about.CreatedAt = &now
	about.UpdatedAt = &now
	r.records[about.ID] = about

	return nil
}

func (r *fakeAboutRepo) Save(_ context.Context, about *entity.About) error {
	if _, ok := r.records[about.ID]; !ok {
		return repository.ErrAboutNotFound
	}
	r.records[about.ID] = about

	return nil
}

func (r *fakeAboutRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.records[id]; !ok {
		return repository.ErrAboutNotFound
	}
	delete(r.records, id)

	return nil
}

type fakeProjectRepo struct {
	records map[int64]*entity.Project
	nextID  int64
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{records: map[int64]*entity.Project{}, nextID: 1}
}

func (r *fakeProjectRepo) FindAll(context.Context) ([]*entity.Project, error) {
	out := make([]*entity.Project, 0, len(r.records))
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.records[id]; ok {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *fakeProjectRepo) FindByID(_ context.Context, id int64) (*entity.Project, error) {
	p, ok := r.records[id]
	if !ok {
		return nil, repository.ErrProjectNotFound
	}

	return p, nil
}

func (r *fakeProjectRepo) Create(_ context.Context, project *entity.Project) error {
	project.ID = r.nextID
	r.nextID++
	r.records[project.ID] = project

	return nil
}

func (r *fakeProjectRepo) Save(_ context.Context, project *entity.Project) error {
	if _, ok := r.records[project.ID]; !ok {
		return repository.ErrProjectNotFound
	}
	r.records[project.ID] = project

	return nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.records[id]; !ok {
		return repository.ErrProjectNotFound
	}
	delete(r.records, id)

	return nil
}

type fakeSkillRepo struct {
	records    map[int64]*entity.Skill
	nextID     int64
	deletedIDs []int64

	// tools, when set, stands in for the ON DELETE CASCADE foreign key:
	// deleting a skill removes the tools that reference it.
	tools *fakeToolRepo
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{records: map[int64]*entity.Skill{}, nextID: 1}
}

func (r *fakeSkillRepo) FindAll(context.Context) ([]*entity.Skill, error) {
	out := make([]*entity.Skill, 0, len(r.records))
	for id := int64(1); id < r.nextID; id++ {
		if s, ok := r.records[id]; ok {
			out = append(out, s)
		}
	}

	return out, nil
}

func (r *fakeSkillRepo) FindByID(_ context.Context, id int64) (*entity.Skill, error) {
	s, ok := r.records[id]
	if !ok {
		return nil, repository.ErrSkillNotFound
	}

	return s, nil
}

func (r *fakeSkillRepo) Create(_ context.Context, skill *entity.Skill) error {
	skill.ID = r.nextID
	r.nextID++
	r.records[skill.ID] = skill

	return nil
}

func (r *fakeSkillRepo) Save(_ context.Context, skill *entity.Skill) error {
	if _, ok := r.records[skill.ID]; !ok {
		return repository.ErrSkillNotFound
	}
	r.records[skill.ID] = skill

	return nil
}

func (r *fakeSkillRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.records[id]; !ok {
		return repository.ErrSkillNotFound
	}
	delete(r.records, id)
	r.deletedIDs = append(r.deletedIDs, id)

	if r.tools != nil {
		for toolID, tool := range r.tools.records {
			if tool.SkillID != nil && *tool.SkillID == id {
				delete(r.tools.records, toolID)
			}
		}
	}

	return nil
}

type fakeToolRepo struct {
	records map[int64]*entity.Tool
	nextID  int64
}

func newFakeToolRepo() *fakeToolRepo {
	return &fakeToolRepo{records: map[int64]*entity.Tool{}, nextID: 1}
}

func (r *fakeToolRepo) FindAll(context.Context) ([]*entity.Tool, error) {
	out := make([]*entity.Tool, 0, len(r.records))
	for id := int64(1); id < r.nextID; id++ {
		if tool, ok := r.records[id]; ok {
			out = append(out, tool)
		}
	}

	return out, nil
}

func (r *fakeToolRepo) FindByID(_ context.Context, id int64) (*entity.Tool, error) {
	tool, ok := r.records[id]
	if !ok {
		return nil, repository.ErrToolNotFound
	}

	return tool, nil
}

func (r *fakeToolRepo) Create(_ context.Context, tool *entity.Tool) error {
	tool.ID = r.nextID
	r.nextID++
	r.records[tool.ID] = tool

	return nil
}

func (r *fakeToolRepo) Save(_ context.Context, tool *entity.Tool) error {
	if _, ok := r.records[tool.ID]; !ok {
		return repository.ErrToolNotFound
	}
	r.records[tool.ID] = tool

	return nil
}

func (r *fakeToolRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.records[id]; !ok {
		return repository.ErrToolNotFound
	}
	delete(r.records, id)

	return nil
}
