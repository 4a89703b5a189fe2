package model

type Note struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt int64    `json:"created_at"`
	UpdatedAt int64    `json:"updated_at"`
}

// Clone returns a copy whose tag slice does not alias the receiver's.
func (n *Note) Clone() *Note {
	out := *n
	out.Tags = append([]string(nil), n.Tags...)
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return &out
}
