package job

import (
	"errors"
	"time"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/errs"
	"haul/internal/pkg/guard"
)

// Domain errors for job operations.
var (
	ErrTitleIsRequired              = errs.NewValueIsRequiredError("title")
	ErrContactPhoneIsRequired       = errs.NewValueIsRequiredError("contact phone")
	ErrOriginAddressIsRequired      = errs.NewValueIsRequiredError("origin address")
	ErrDestinationAddressIsRequired = errs.NewValueIsRequiredError("destination address")
	ErrPriceMustBePositive          = errs.NewValueIsInvalidError("price")
	ErrJobIsNotAccepted             = errs.NewValueIsRequiredError("accepted at")
	// ErrJobIsNotConstructed is returned when using an improperly initialized Job.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")
)

// Job is the lifecycle aggregate: a move request posted by one user, accepted
// by at most one mover, and settled through an escrowed payment hold once both
// sides confirm completion.
//
// The authoritative state is the flag set (mover assignment, posterConfirmed,
// moverConfirmed, completed, inConflict); Status() derives the lifecycle state
// from it. Completed and Conflict are terminal.
type Job struct {
	id                 kernel.UUID
	posterID           kernel.UUID
	moverID            *kernel.UUID
	title              string
	description        string
	contactPhone       string
	originAddress      string
	destinationAddress string
	origin             *kernel.GeoPoint
	destination        *kernel.GeoPoint
	distanceKm         float64
	price              int64
	holdRef            string
	posterConfirmed    bool
	moverConfirmed     bool
	completed          bool
	inConflict         bool
	createdAt          time.Time
	acceptedAt         *time.Time
	guard              guard.ConstructorGuard
}

// NewJob creates an open job posted by posterID. The price is in the smallest
// currency unit (cents) and must be positive.
func NewJob(
	id kernel.UUID,
	posterID kernel.UUID,
	title string,
	description string,
	contactPhone string,
	originAddress string,
	destinationAddress string,
	price int64,
	now time.Time,
) (*Job, error) {
	j := &Job{
		description: description,
		createdAt:   now,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		j.setID(id),
		j.setPosterID(posterID),
		j.setTitle(title),
		j.setContactPhone(contactPhone),
		j.setAddresses(originAddress, destinationAddress),
		j.setPrice(price),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJob reconstructs a job aggregate from persisted state.
func RestoreJob(
	id kernel.UUID,
	posterID kernel.UUID,
	moverID *kernel.UUID,
	title string,
	description string,
	contactPhone string,
	originAddress string,
	destinationAddress string,
	origin *kernel.GeoPoint,
	destination *kernel.GeoPoint,
	distanceKm float64,
	price int64,
	holdRef string,
	posterConfirmed bool,
	moverConfirmed bool,
	completed bool,
	inConflict bool,
	createdAt time.Time,
	acceptedAt *time.Time,
) (*Job, error) {
	j, err := NewJob(id, posterID, title, description, contactPhone,
		originAddress, destinationAddress, price, createdAt)
	if err != nil {
		return nil, err
	}

	j.moverID = moverID
	j.origin = origin
	j.destination = destination
	j.distanceKm = distanceKm
	j.holdRef = holdRef
	j.posterConfirmed = posterConfirmed
	j.moverConfirmed = moverConfirmed
	j.completed = completed
	j.inConflict = inConflict
	j.acceptedAt = acceptedAt

	return j, nil
}

// Validate ensures the job was created through a constructor.
func (j *Job) Validate() error {
	if j == nil {
		return ErrJobIsNotConstructed
	}
	return j.guard.Validate(ErrJobIsNotConstructed)
}

func (j *Job) ID() kernel.UUID               { return j.id }
func (j *Job) PosterID() kernel.UUID         { return j.posterID }
func (j *Job) MoverID() *kernel.UUID         { return j.moverID }
func (j *Job) Title() string                 { return j.title }
func (j *Job) Description() string           { return j.description }
func (j *Job) ContactPhone() string          { return j.contactPhone }
func (j *Job) OriginAddress() string         { return j.originAddress }
func (j *Job) DestinationAddress() string    { return j.destinationAddress }
func (j *Job) Origin() *kernel.GeoPoint      { return j.origin }
func (j *Job) Destination() *kernel.GeoPoint { return j.destination }
func (j *Job) DistanceKm() float64           { return j.distanceKm }
func (j *Job) Price() int64                  { return j.price }
func (j *Job) HoldRef() string               { return j.holdRef }
func (j *Job) IsPosterConfirmed() bool       { return j.posterConfirmed }
func (j *Job) IsMoverConfirmed() bool        { return j.moverConfirmed }
func (j *Job) IsCompleted() bool             { return j.completed }
func (j *Job) IsInConflict() bool            { return j.inConflict }
func (j *Job) CreatedAt() time.Time          { return j.createdAt }
func (j *Job) AcceptedAt() *time.Time        { return j.acceptedAt }

// Status derives the lifecycle state from the flag set. Conflict overrides
// everything, then Completed, then the confirmation flags.
func (j *Job) Status() Status {
	switch {
	case j.inConflict:
		return StatusConflict
	case j.completed:
		return StatusCompleted
	case j.moverConfirmed && !j.posterConfirmed:
		return StatusAwaitingPosterConfirm
	case j.posterConfirmed && !j.moverConfirmed:
		return StatusAwaitingMoverConfirm
	case j.moverID != nil:
		return StatusAccepted
	default:
		return StatusOpen
	}
}

// AttachRoute records the geocoded endpoints and computes the trip distance.
func (j *Job) AttachRoute(origin kernel.GeoPoint, destination kernel.GeoPoint) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}

	distance, err := origin.DistanceKm(destination)
	if err != nil {
		return err
	}

	j.origin = &origin
	j.destination = &destination
	j.distanceKm = distance
	return nil
}

// Assign attaches the mover to an open job and stamps acceptedAt. A mover is
// assigned at most once and may not be the poster.
func (j *Job) Assign(moverID kernel.UUID, now time.Time) error {
	if err := moverID.Validate(); err != nil {
		return err
	}
	if j.Status() != StatusOpen {
		return errs.NewInvalidTransitionError("accept", j.Status().String())
	}
	if moverID.IsEqual(j.posterID) {
		return errs.NewPolicyViolationError("poster cannot accept their own job")
	}

	j.moverID = &moverID
	j.acceptedAt = &now
	return nil
}

// AttachHold records the payment processor hold reference. A job is held at
// most once; re-attaching is a policy violation, never a silent overwrite.
func (j *Job) AttachHold(ref string) error {
	if ref == "" {
		return errs.NewValueIsRequiredError("hold reference")
	}
	if j.holdRef != "" {
		return errs.NewPolicyViolationError("hold is already attached to the job")
	}

	j.holdRef = ref
	return nil
}

// ConfirmByMover records the mover's completion confirmation. Re-confirmation
// is a no-op reported via changed=false. The transition is only valid while
// the job is Accepted or awaiting this side's confirmation.
func (j *Job) ConfirmByMover() (changed bool, err error) {
	if j.moverConfirmed {
		return false, nil
	}
	if s := j.Status(); s != StatusAccepted && s != StatusAwaitingMoverConfirm {
		return false, errs.NewInvalidTransitionError("confirm by mover", s.String())
	}

	j.moverConfirmed = true
	return true, nil
}

// ConfirmByPoster records the poster's completion confirmation. Symmetric to
// ConfirmByMover.
func (j *Job) ConfirmByPoster() (changed bool, err error) {
	if j.posterConfirmed {
		return false, nil
	}
	if s := j.Status(); s != StatusAccepted && s != StatusAwaitingPosterConfirm {
		return false, errs.NewInvalidTransitionError("confirm by poster", s.String())
	}

	j.posterConfirmed = true
	return true, nil
}

// BothConfirmed reports whether the job is ready to settle.
func (j *Job) BothConfirmed() bool {
	return j.posterConfirmed && j.moverConfirmed
}

// MarkSettled transitions the job to Completed after a successful capture.
// It requires both confirmations and a non-conflicted job.
func (j *Job) MarkSettled() error {
	if j.completed {
		return nil
	}
	if j.inConflict {
		return errs.NewInvalidTransitionError("settle", j.Status().String())
	}
	if !j.BothConfirmed() {
		return errs.NewInvalidTransitionError("settle", j.Status().String())
	}

	j.completed = true
	return nil
}

// MarkConflict transitions the job to the terminal Conflict state. Completed
// and already-conflicted jobs cannot be disputed.
func (j *Job) MarkConflict() error {
	if s := j.Status(); s.IsTerminal() {
		return errs.NewInvalidTransitionError("report conflict", s.String())
	}

	j.inConflict = true
	return nil
}

// TimeSinceAcceptance returns how long ago the mover accepted the job.
// Callers use it to gate premature confirmations and conflict reports.
func (j *Job) TimeSinceAcceptance(now time.Time) (time.Duration, error) {
	if j.acceptedAt == nil {
		return 0, ErrJobIsNotAccepted
	}
	return now.Sub(*j.acceptedAt), nil
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setPosterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.posterID = id
	return nil
}

func (j *Job) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	j.title = title
	return nil
}

func (j *Job) setContactPhone(phone string) error {
	if phone == "" {
		return ErrContactPhoneIsRequired
	}
	j.contactPhone = phone
	return nil
}

func (j *Job) setAddresses(origin, destination string) error {
	if origin == "" {
		return ErrOriginAddressIsRequired
	}
	if destination == "" {
		return ErrDestinationAddressIsRequired
	}
	j.originAddress = origin
	j.destinationAddress = destination
	return nil
}

func (j *Job) setPrice(price int64) error {
	if price <= 0 {
		return ErrPriceMustBePositive
	}
	j.price = price
	return nil
}
