package config

type JobKind string

const (
	JobKindDoubles JobKind = "doubles"
	JobKindShuffle JobKind = "shuffle"
	JobKindPerm    JobKind = "perm"
	JobKindTiles   JobKind = "tiles"
)

func (k JobKind) Valid() bool {
	switch k {
	case JobKindDoubles, JobKindShuffle, JobKindPerm, JobKindTiles:
		return true
	}
	return false
}

type Job struct {
	Name  string   `json:"name"`
	Kind  JobKind  `json:"kind"`
	Seed  string   `json:"seed"`
	Count int      `json:"count,omitempty"`
	Items []string `json:"items,omitempty"`

	// tiles only
	Columns int `json:"columns,omitempty"`
	Rows    int `json:"rows,omitempty"`
	Width   int `json:"width,omitempty"`
	Height  int `json:"height,omitempty"`
}
