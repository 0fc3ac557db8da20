package notify

import (
	"context"
	"fmt"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/ports"
	"waterdelivery/internal/pkg/errs"
)

// StaticUserDirectory resolves contacts from configuration. Operator
// contacts come from a fixed list, user contacts are derived from the
// user identifier. Suitable until a real account service exists.
type StaticUserDirectory struct {
	operatorContacts []string
}

// NewStaticUserDirectory creates a directory with the given operator contacts.
func NewStaticUserDirectory(operatorContacts []string) (*StaticUserDirectory, error) {
	if len(operatorContacts) == 0 {
		return nil, errs.NewValueIsRequiredError("operatorContacts")
	}
	for _, contact := range operatorContacts {
		if contact == "" {
			return nil, errs.NewValueIsInvalidError("operatorContacts")
		}
	}

	contacts := make([]string, len(operatorContacts))
	copy(contacts, operatorContacts)
	return &StaticUserDirectory{operatorContacts: contacts}, nil
}

func (d *StaticUserDirectory) OperatorContacts(_ context.Context) ([]string, error) {
	contacts := make([]string, len(d.operatorContacts))
	copy(contacts, d.operatorContacts)
	return contacts, nil
}

func (d *StaticUserDirectory) UserContact(_ context.Context, userID kernel.UUID) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf("user:%s", userID.String()), nil
}

var _ ports.UserDirectory = (*StaticUserDirectory)(nil)
