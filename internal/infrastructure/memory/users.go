package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rec := range r.s.users {
		if rec.val.Username == user.Username {
			return domain.ErrDuplicate
		}
	}
	r.s.users[user.ID] = record[entity.User]{seq: r.s.nextSeq(), val: *user}
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	u := rec.val
	return &u, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, rec := range r.s.users {
		if rec.val.Username == username {
			u := rec.val
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) ListActive(_ context.Context) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.User
	for _, rec := range r.s.users {
		if rec.val.IsActive {
			u := rec.val
			list = append(list, &u)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Username < list[j].Username })
	return list, nil
}

func (r *UserRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[string]*entity.User, len(ids))
	for _, id := range ids {
		if rec, ok := r.s.users[id]; ok {
			u := rec.val
			out[id] = &u
		}
	}
	return out, nil
}

func (r *UserRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.users), nil
}
