package subsonic

// envelope wraps every JSON response.
type envelope struct {
	Response response `json:"subsonic-response"`
}

type response struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Error   *Error `json:"error,omitempty"`

	SearchResult3 *SearchResult `json:"searchResult3,omitempty"`
	Album         *Album        `json:"album,omitempty"`
	Artist        *Artist       `json:"artist,omitempty"`
	ArtistInfo2   *ArtistInfo   `json:"artistInfo2,omitempty"`
	TopSongs      *songList     `json:"topSongs,omitempty"`
	SimilarSongs  *songList     `json:"similarSongs,omitempty"`
	SimilarSongs2 *songList     `json:"similarSongs2,omitempty"`
	RandomSongs   *songList     `json:"randomSongs,omitempty"`
	Genres        *genreList    `json:"genres,omitempty"`
	Playlists     *playlistList `json:"playlists,omitempty"`
	Playlist      *Playlist     `json:"playlist,omitempty"`
	Starred2      *Starred      `json:"starred2,omitempty"`
	AlbumList2    *albumList    `json:"albumList2,omitempty"`
}

// Song is a track ("child" in the Subsonic schema).
type Song struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Album      string `json:"album"`
	AlbumID    string `json:"albumId"`
	Artist     string `json:"artist"`
	ArtistID   string `json:"artistId"`
	CoverArt   string `json:"coverArt"`
	Duration   int    `json:"duration"`
	Track      int    `json:"track"`
	Year       int    `json:"year"`
	Genre      string `json:"genre"`
	Type       string `json:"type"`
	IsVideo    bool   `json:"isVideo"`
	UserRating int    `json:"userRating"`
}

// Album is an ID3 album, with its songs when fetched by id.
type Album struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Artist    string `json:"artist"`
	ArtistID  string `json:"artistId"`
	CoverArt  string `json:"coverArt"`
	SongCount int    `json:"songCount"`
	Year      int    `json:"year"`
	Genre     string `json:"genre"`
	Song      []Song `json:"song,omitempty"`
}

// Artist is an ID3 artist, with its albums when fetched by id.
type Artist struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	AlbumCount int     `json:"albumCount"`
	Album      []Album `json:"album,omitempty"`
}

// ArtistInfo holds biography data and similar artists.
type ArtistInfo struct {
	Biography      string   `json:"biography"`
	MusicBrainzID  string   `json:"musicBrainzId"`
	SimilarArtists []Artist `json:"similarArtist,omitempty"`
}

// SearchResult is the search3 payload.
type SearchResult struct {
	Artists []Artist `json:"artist,omitempty"`
	Albums  []Album  `json:"album,omitempty"`
	Songs   []Song   `json:"song,omitempty"`
}

// Starred is the starred2 payload.
type Starred struct {
	Artists []Artist `json:"artist,omitempty"`
	Albums  []Album  `json:"album,omitempty"`
	Songs   []Song   `json:"song,omitempty"`
}

// Genre is a genre with its usage counts.
type Genre struct {
	Value      string `json:"value"`
	SongCount  int    `json:"songCount"`
	AlbumCount int    `json:"albumCount"`
}

// Playlist is a server playlist; Entry is only filled by GetPlaylist.
type Playlist struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Owner     string `json:"owner"`
	SongCount int    `json:"songCount"`
	Entry     []Song `json:"entry,omitempty"`
}

type songList struct {
	Song []Song `json:"song,omitempty"`
}

type genreList struct {
	Genre []Genre `json:"genre,omitempty"`
}

type playlistList struct {
	Playlist []Playlist `json:"playlist,omitempty"`
}

type albumList struct {
	Album []Album `json:"album,omitempty"`
}
