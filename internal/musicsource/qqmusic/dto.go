package qqmusic

// searchResponse is the search envelope: status 1 with a flat data array
type searchResponse struct {
	Status int       `json:"status"`
	Data   []songDTO `json:"data"`
}

// songDTO is one raw search result item
type songDTO struct {
	SongMid  string `json:"songmid"`
	SongName string `json:"songname"`
	Singer   string `json:"singer"`
	Level    int    `json:"level"` // quality level 1..4
}

// detailResponse is the detail envelope
type detailResponse struct {
	Status int       `json:"status"`
	Data   detailDTO `json:"data"`
}

// detailDTO is the raw detail record. SongName and Name are aliases.
type detailDTO struct {
	SongName string `json:"songname"`
	Name     string `json:"name"`
	Singer   string `json:"singer"`
	Cover    string `json:"cover"` // may be relative to the API base
	PlayURL  string `json:"playUrl"`
	Lyric    string `json:"lyric"`
	Level    int    `json:"level"`
}
