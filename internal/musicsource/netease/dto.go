package netease

// searchResponse is the search envelope: code 200 with a result object
type searchResponse struct {
	Code   int `json:"code"`
	Result struct {
		Songs []songDTO `json:"songs"`
	} `json:"result"`
}

// songDTO is one raw search result item
type songDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Artist  string `json:"artist"`
	Quality int    `json:"quality"` // bitrate code, e.g. 320000
}

// detailResponse is the detail envelope
type detailResponse struct {
	Code int       `json:"code"`
	Data detailDTO `json:"data"`
}

// detailDTO is the raw detail record. Name and SongName are aliases;
// deployments differ in which one they populate.
type detailDTO struct {
	Name     string `json:"name"`
	SongName string `json:"songName"`
	Artist   string `json:"artist"`
	Pic      string `json:"pic"` // may be relative to the API base
	URL      string `json:"url"`
	Lyric    string `json:"lyric"`
	Quality  int    `json:"quality"`
}
