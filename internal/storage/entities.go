package storage

// Persisted document shapes. Field names match the historical JSON payload
// so snapshots written by earlier releases load unchanged; schema drift is
// detected purely by absent fields (nil slice / empty string), never by a
// version number.

type yearDocument struct {
	Days     []dayDocument   `json:"days"`
	Habits   []habitDocument `json:"habits"`
	Goal     string          `json:"goal"`
	Theme    string          `json:"theme"`
	Language string          `json:"language"`
}

type dayDocument struct {
	DayID     int            `json:"dayId"`
	Completed bool           `json:"completed"`
	Tasks     []taskDocument `json:"tasks"`
}

type taskDocument struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Completed bool              `json:"completed"`
	SubTasks  []subTaskDocument `json:"subTasks"`
}

type subTaskDocument struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type habitDocument struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}
