package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p MovePayload) Validate() error {
	if p.Direction == "" {
		return errors.New("direction is required")
	}
	return nil
}

func (p MonstersPayload) Validate() error {
	if p.Active == nil {
		return errors.New("active is required")
	}
	return nil
}
