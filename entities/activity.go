package entities

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Activity is one extracurricular activity as reported by the activities service
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft returns the number of signup spots still available. The service is
// trusted to keep the participant count within the maximum.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// ActivityCatalog is the full set of activities, in the order the activities
// service reported them
type ActivityCatalog []Activity

// UnmarshalJSON decodes the service's JSON object of activities keyed by name.
// The object's key order is meaningful to rendering, so the catalog is decoded
// from the token stream rather than through a map
func (c *ActivityCatalog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "could not read start of catalog")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("catalog is not a JSON object")
	}

	catalog := ActivityCatalog{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return errors.Wrap(err, "could not read activity name")
		}
		name, ok := tok.(string)
		if !ok {
			return errors.New("activity name is not a string")
		}

		var activity Activity
		err = dec.Decode(&activity)
		if err != nil {
			return errors.Wrapf(err, "could not decode activity %s", name)
		}
		activity.Name = name

		catalog = append(catalog, activity)
	}

	_, err = dec.Token()
	if err != nil {
		return errors.Wrap(err, "could not read end of catalog")
	}

	*c = catalog
	return nil
}
