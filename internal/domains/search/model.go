package search

import "encoding/json"

// Hit types.
const (
	TypeUser    = "user"
	TypePost    = "post"
	TypeProduct = "product"
)

// Hit is one matched record. It serializes as the record's own fields plus
// "type" and "relevance".
type Hit struct {
	Type      string
	Relevance int
	Item      interface{}
}

func (h Hit) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(h.Item)
	if err != nil {
		return nil, err
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	if fields["type"], err = json.Marshal(h.Type); err != nil {
		return nil, err
	}
	if fields["relevance"], err = json.Marshal(h.Relevance); err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}
