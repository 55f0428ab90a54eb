// Package memory implementa los puertos de persistencia en memoria de proceso.
// Se usa con STORAGE_DRIVER=memory en desarrollo y como doble de prueba de los use cases.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// record guarda el orden de inserción para desempatar created_at iguales.
type record[T any] struct {
	seq int64
	val T
}

// Store contiene todas las tablas; cada repositorio comparte su mutex.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	seq  int64

	users     map[string]record[entity.User]
	projects  map[string]record[entity.Project]
	tasks     map[string]record[entity.Task]
	purchases map[string]record[entity.PurchaseRequest]
	suppliers map[string]record[entity.Supplier]
	invoices  map[string]record[entity.Invoice]
	comments  map[string]record[entity.Comment]
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		users:     make(map[string]record[entity.User]),
		projects:  make(map[string]record[entity.Project]),
		tasks:     make(map[string]record[entity.Task]),
		purchases: make(map[string]record[entity.PurchaseRequest]),
		suppliers: make(map[string]record[entity.Supplier]),
		invoices:  make(map[string]record[entity.Invoice]),
		comments:  make(map[string]record[entity.Comment]),
	}
}

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Projects devuelve el repositorio de proyectos.
func (s *Store) Projects() *ProjectRepo { return &ProjectRepo{s: s} }

// Tasks devuelve el repositorio de tareas.
func (s *Store) Tasks() *TaskRepo { return &TaskRepo{s: s} }

// PurchaseRequests devuelve el repositorio de solicitudes de compra.
func (s *Store) PurchaseRequests() *PurchaseRequestRepo { return &PurchaseRequestRepo{s: s} }

// Suppliers devuelve el repositorio de proveedores.
func (s *Store) Suppliers() *SupplierRepo { return &SupplierRepo{s: s} }

// Invoices devuelve el repositorio de facturas.
func (s *Store) Invoices() *InvoiceRepo { return &InvoiceRepo{s: s} }

// Comments devuelve el repositorio de comentarios.
func (s *Store) Comments() *CommentRepo { return &CommentRepo{s: s} }

// RunUsers ejecuta fn con el repositorio de usuarios; si fn falla, la tabla
// vuelve al estado anterior (equivalente al rollback de postgres.TxRunner).
func (s *Store) RunUsers(ctx context.Context, fn func(users repository.UserRepository) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := make(map[string]record[entity.User], len(s.users))
	for k, v := range s.users {
		snapshot[k] = v
	}
	s.mu.RUnlock()

	if err := fn(s.Users()); err != nil {
		s.mu.Lock()
		s.users = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// sortNewestFirst ordena por created_at descendente y, a igualdad, por inserción descendente.
func sortNewestFirst[T any](recs []record[T], createdAt func(T) time.Time) []T {
	sort.SliceStable(recs, func(i, j int) bool {
		ti, tj := createdAt(recs[i].val), createdAt(recs[j].val)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return recs[i].seq > recs[j].seq
	})
	out := make([]T, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.val)
	}
	return out
}

// sortOldestFirst ordena por created_at ascendente y, a igualdad, por inserción.
func sortOldestFirst[T any](recs []record[T], createdAt func(T) time.Time) []T {
	sort.SliceStable(recs, func(i, j int) bool {
		ti, tj := createdAt(recs[i].val), createdAt(recs[j].val)
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return recs[i].seq < recs[j].seq
	})
	out := make([]T, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.val)
	}
	return out
}

func errNotFound(table, id string) error {
	return fmt.Errorf("memory: %s %s: %w", table, id, domain.ErrNotFound)
}

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTime(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
