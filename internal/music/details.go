package music

// AlbumDetails is an album with its track list.
type AlbumDetails struct {
	Album  *Album
	Tracks []*Song
}

// ArtistDetails is what an artist expands to.
type ArtistDetails struct {
	Artist   *Artist
	TopSongs []*Song
	Albums   []*Album
	Related  []*Artist
}
