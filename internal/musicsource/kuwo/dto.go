package kuwo

// searchResponse is the search envelope: code 200 with a nested list
type searchResponse struct {
	Code int `json:"code"`
	Data struct {
		List []songDTO `json:"list"`
	} `json:"data"`
}

// songDTO is one raw search result item
type songDTO struct {
	RID    int64  `json:"rid"`
	Title  string `json:"title"`
	Author string `json:"author"`
	BR     string `json:"br"` // bitrate label, e.g. "320kmp3"
}

// detailResponse is the detail envelope
type detailResponse struct {
	Code int       `json:"code"`
	Data detailDTO `json:"data"`
}

// detailDTO is the raw detail record. Title and Name are aliases.
type detailDTO struct {
	Title  string `json:"title"`
	Name   string `json:"name"`
	Author string `json:"author"`
	Pic    string `json:"pic"` // may be relative to the API base
	URL    string `json:"url"`
	Lrc    string `json:"lrc"`
	BR     string `json:"br"`
}
