package domain

// ProjectKind tells ordinary projects from training projects, whose names
// start with the training marker.
type ProjectKind string

const (
	KindOrdinary ProjectKind = "ordinary"
	KindTraining ProjectKind = "training"
)

// StatusClass is the presentation class of a roadmap node.
type StatusClass string

const (
	StatusNone              StatusClass = "none"
	StatusCompleted         StatusClass = "completed"
	StatusTrainingPending   StatusClass = "training_pending"
	StatusTrainingCompleted StatusClass = "training_completed"
)

// RepetitionPhase is where a training task stands in its schedule.
type RepetitionPhase string

const (
	PhaseUnmarked   RepetitionPhase = "unmarked"
	PhaseInProgress RepetitionPhase = "in_progress"
	PhaseComplete   RepetitionPhase = "complete"
)
