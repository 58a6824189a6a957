// Catalog response types for the backend's metadata-provider proxy.
//
// Shapes follow the TMDB v3 API as exposed through /api/details, /api/fetch
// and /api/search. Movies report title/release_date, TV shows name/first_air_date;
// the accessor methods paper over the split.
package models

// Genre is a named genre tag on a title.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TitleDetail is the primary record of the detail page fan-out.
type TitleDetail struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	Tagline      string  `json:"tagline"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	Runtime      int     `json:"runtime"`
	Status       string  `json:"status"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Genres       []Genre `json:"genres"`
}

// DisplayTitle returns the movie title or TV show name, whichever is set.
func (d *TitleDetail) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Name
}

// Date returns the release date or first air date, whichever is set.
func (d *TitleDetail) Date() string {
	if d.ReleaseDate != "" {
		return d.ReleaseDate
	}
	return d.FirstAirDate
}

// CastMember is one entry of a credits cast list.
type CastMember struct {
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// CrewMember is one entry of a credits crew list.
type CrewMember struct {
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// Credits holds the cast and crew lists for one title.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Director returns the first crew member with the Director job, or "".
func (c *Credits) Director() string {
	for _, member := range c.Crew {
		if member.Job == "Director" {
			return member.Name
		}
	}
	return ""
}

// Keyword is a tag attached to a title.
type Keyword struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// KeywordList carries both shapes the keywords sub-resource uses: movies
// report "keywords", TV shows "results".
type KeywordList struct {
	Keywords []Keyword `json:"keywords"`
	Results  []Keyword `json:"results"`
}

// All returns whichever list the provider populated.
func (k *KeywordList) All() []Keyword {
	if len(k.Keywords) > 0 {
		return k.Keywords
	}
	return k.Results
}

// Provider is one streaming/rental service in a watch-provider listing.
type Provider struct {
	ProviderName string `json:"provider_name"`
	LogoPath     string `json:"logo_path"`
}

// CountryProviders groups providers by offer kind for one country.
type CountryProviders struct {
	Link     string     `json:"link"`
	Flatrate []Provider `json:"flatrate"`
	Rent     []Provider `json:"rent"`
	Buy      []Provider `json:"buy"`
}

// WatchProviders is the watch/providers sub-resource, keyed by country code.
type WatchProviders struct {
	Results map[string]CountryProviders `json:"results"`
}

// Video is one trailer/clip entry of the videos sub-resource.
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// VideoList wraps the videos sub-resource results.
type VideoList struct {
	Results []Video `json:"results"`
}

// Trailer returns the first YouTube trailer in the list, or nil.
func (v *VideoList) Trailer() *Video {
	for i := range v.Results {
		if v.Results[i].Site == "YouTube" && v.Results[i].Type == "Trailer" {
			return &v.Results[i]
		}
	}
	return nil
}

// Image is one backdrop or poster of the images sub-resource.
type Image struct {
	FilePath string `json:"file_path"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// ImageSet is the images sub-resource of the detail fan-out.
type ImageSet struct {
	Backdrops []Image `json:"backdrops"`
	Posters   []Image `json:"posters"`
}

// SearchResult is one row of a /api/search response page.
type SearchResult struct {
	ID           int64   `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	PosterPath   string  `json:"poster_path"`
	Overview     string  `json:"overview"`
	VoteAverage  float64 `json:"vote_average"`
}

// DisplayTitle returns the movie title or TV show name, whichever is set.
func (r SearchResult) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// Category derives the navigation content category from the reported media
// type: "Movies" for movies, "tv" for everything else.
func (r SearchResult) Category() string {
	if r.MediaType == string(MediaMovie) {
		return "Movies"
	}
	return "tv"
}

// SearchPage is one page of search results with the reported total page count.
type SearchPage struct {
	Results      []SearchResult `json:"results"`
	Page         int            `json:"page"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}
