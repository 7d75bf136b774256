package commands

import (
	"errors"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/guard"
)

var (
	ErrPostJobCommandIsNotConstructed = errors.New(
		"PostJobCommand must be created via NewPostJobCommand constructor",
	)
	ErrTitleIsRequired              = errors.New("title is required")
	ErrContactPhoneIsRequired       = errors.New("contact phone is required")
	ErrOriginAddressIsRequired      = errors.New("origin address is required")
	ErrDestinationAddressIsRequired = errors.New("destination address is required")
	ErrPriceIsInvalid               = errors.New("price must be greater than 0")
)

// PostJobCommand represents a request to post a new move job. The price is
// in the smallest currency unit (cents).
type PostJobCommand struct { //nolint:recvcheck //using for validation
	jobID              kernel.UUID
	posterID           kernel.UUID
	title              string
	description        string
	contactPhone       string
	originAddress      string
	destinationAddress string
	price              int64

	guard guard.ConstructorGuard
}

// NewPostJobCommand creates a command to post a new job.
// The description is optional; everything else is required.
func NewPostJobCommand(
	jobID kernel.UUID,
	posterID kernel.UUID,
	title string,
	description string,
	contactPhone string,
	originAddress string,
	destinationAddress string,
	price int64,
) (PostJobCommand, error) {
	cmd := PostJobCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setPosterID(posterID),
		cmd.setTitle(title),
		cmd.setContactPhone(contactPhone),
		cmd.setAddresses(originAddress, destinationAddress),
		cmd.setPrice(price),
	); err != nil {
		return PostJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PostJobCommand) Validate() error {
	return c.guard.Validate(ErrPostJobCommandIsNotConstructed)
}

// JobID returns the identifier for the new job.
func (c PostJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// PosterID returns the account posting the job.
func (c PostJobCommand) PosterID() kernel.UUID {
	return c.posterID
}

// Title returns the short job title.
func (c PostJobCommand) Title() string {
	return c.title
}

// Description returns the free-text job description.
func (c PostJobCommand) Description() string {
	return c.description
}

// ContactPhone returns the phone number shown to the mover.
func (c PostJobCommand) ContactPhone() string {
	return c.contactPhone
}

// OriginAddress returns the pickup address text.
func (c PostJobCommand) OriginAddress() string {
	return c.originAddress
}

// DestinationAddress returns the drop-off address text.
func (c PostJobCommand) DestinationAddress() string {
	return c.destinationAddress
}

// Price returns the offered price in the smallest currency unit.
func (c PostJobCommand) Price() int64 {
	return c.price
}

func (c *PostJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *PostJobCommand) setPosterID(posterID kernel.UUID) error {
	if err := posterID.Validate(); err != nil {
		return err
	}

	c.posterID = posterID
	return nil
}

func (c *PostJobCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *PostJobCommand) setContactPhone(phone string) error {
	if phone == "" {
		return ErrContactPhoneIsRequired
	}

	c.contactPhone = phone
	return nil
}

func (c *PostJobCommand) setAddresses(origin, destination string) error {
	if origin == "" {
		return ErrOriginAddressIsRequired
	}
	if destination == "" {
		return ErrDestinationAddressIsRequired
	}

	c.originAddress = origin
	c.destinationAddress = destination
	return nil
}

func (c *PostJobCommand) setPrice(price int64) error {
	if price <= 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
