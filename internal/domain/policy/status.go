package policy

import "github.com/jhoicas/Proyectos-api/internal/domain/entity"

// TransitionTargets estados a los que se puede mover un proyecto con TransitionProject.
var TransitionTargets = []entity.ProjectStatus{
	entity.ProjectInProgress,
	entity.ProjectOnHold,
	entity.ProjectCompleted,
	entity.ProjectCancelled,
}

// ExecutionVisible estados que ven los roles sin vista especial en el dashboard.
var ExecutionVisible = []entity.ProjectStatus{
	entity.ProjectApproved,
	entity.ProjectInProgress,
	entity.ProjectCompleted,
	entity.ProjectOnHold,
}

// PurchaseEligible estados de proyecto que admiten nuevas solicitudes de compra.
var PurchaseEligible = []entity.ProjectStatus{
	entity.ProjectApproved,
	entity.ProjectInProgress,
}

// InvoiceEligible estados de proyecto que admiten nuevas facturas.
var InvoiceEligible = []entity.ProjectStatus{
	entity.ProjectApproved,
	entity.ProjectInProgress,
	entity.ProjectCompleted,
}

// IsTransitionTarget informa si s es un destino válido de TransitionProject.
func IsTransitionTarget(s entity.ProjectStatus) bool {
	return containsStatus(TransitionTargets, s)
}

// IsTaskStatus informa si s es un estado de tarea conocido.
func IsTaskStatus(s entity.TaskStatus) bool {
	switch s {
	case entity.TaskNotStarted, entity.TaskInProgress, entity.TaskDone:
		return true
	}
	return false
}

// Guards precondiciones de estado actual. Solo se aplican en modo estricto; el
// comportamiento por defecto sobrescribe el estado sin mirar el actual.
type Guards struct {
	Strict bool
}

// CanDecideProject aprobar o rechazar exige pending_approval.
func (g Guards) CanDecideProject(current entity.ProjectStatus) bool {
	return !g.Strict || current == entity.ProjectPendingApproval
}

// CanTransitionProject mover el proyecto exige que ya haya sido aprobado.
func (g Guards) CanTransitionProject(current entity.ProjectStatus) bool {
	if !g.Strict {
		return true
	}
	return current == entity.ProjectApproved || IsTransitionTarget(current)
}

// CanDecidePurchase aprobar o rechazar una compra exige pending.
func (g Guards) CanDecidePurchase(current entity.PurchaseStatus) bool {
	return !g.Strict || current == entity.PurchasePending
}

// CanMarkPaid marcar pagada exige pending.
func (g Guards) CanMarkPaid(current entity.PaymentStatus) bool {
	return !g.Strict || current == entity.PaymentPending
}

// TaskProgressFor progreso resultante al poner una tarea en status.
// done fuerza 100; in_progress sube un progreso nulo a 50; el resto no cambia.
func TaskProgressFor(status entity.TaskStatus, current int) int {
	switch status {
	case entity.TaskDone:
		return 100
	case entity.TaskInProgress:
		if current == 0 {
			return 50
		}
	}
	return current
}

// ValidProgress informa si el porcentaje está en [0,100].
func ValidProgress(percent int) bool {
	return percent >= 0 && percent <= 100
}

func containsStatus(list []entity.ProjectStatus, s entity.ProjectStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
