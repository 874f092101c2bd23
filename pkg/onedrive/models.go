package onedrive

import (
	"fmt"
	"strings"
	"time"
)

// User is the minimal identity reference embedded in a resource's "from".
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SharedWith is the access level of a resource.
type SharedWith string

// The provider's access levels, as they appear in shared_with.access.
const (
	SharedWithJustMe           SharedWith = "Just me"
	SharedWithSelected         SharedWith = "People I selected"
	SharedWithFriends          SharedWith = "Friends"
	SharedWithFriendsOfFriends SharedWith = "My friends and their friends"
	SharedWithEveryone         SharedWith = "Everyone (public)"
)

var sharedWithLevels = []SharedWith{
	SharedWithJustMe,
	SharedWithSelected,
	SharedWithFriends,
	SharedWithFriendsOfFriends,
	SharedWithEveryone,
}

// ParseSharedWith maps a wire access string onto a SharedWith, ignoring
// case and surrounding whitespace. Unknown values are an error.
func ParseSharedWith(access string) (SharedWith, error) {
	trimmed := strings.TrimSpace(access)
	for _, level := range sharedWithLevels {
		if strings.EqualFold(trimmed, string(level)) {
			return level, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSharedWith, access)
}

// Location is a photo's geo-tag.
type Location struct {
	Longitude float64
	Latitude  float64
	Altitude  float64
}

// ImageItem is one rendition of a photo (thumbnail, normal, full...).
type ImageItem struct {
	Height float64
	Width  float64
	Source string
	Type   string
}

// Photo is a single photo resource.
// Photos returned by UploadPhoto carry only ID and Name.
type Photo struct {
	ID                  string
	Name                string
	From                *User
	Description         *string
	ParentID            string
	Size                int64
	CommentsCount       int
	CommentsEnabled     bool
	TagsCount           int
	TagsEnabled         bool
	IsEmbeddable        bool
	Link                string
	Picture             *string
	Source              *string
	UploadLocation      string
	Images              []ImageItem
	WhenTaken           *time.Time
	Width               int
	Height              int
	Type                string
	Location            *Location
	CameraMake          *string
	CameraModel         *string
	FocalLength         float64
	FocalRatio          float64
	ExposureNumerator   float64
	ExposureDenominator float64
	SharedWith          SharedWith
	CreatedTime         time.Time
	UpdatedTime         time.Time
	ClientUpdatedTime   time.Time
}

// Album is a photo album.
type Album struct {
	ID                string
	Name              string
	From              *User
	Description       *string
	ParentID          string
	UploadLocation    string
	IsEmbeddable      bool
	Count             int
	Link              string
	Type              string
	SharedWith        SharedWith
	CreatedTime       time.Time
	UpdatedTime       time.Time
	ClientUpdatedTime time.Time
}

// Drive is the root folder of the user's storage.
type Drive struct {
	ID                string
	Name              string
	From              *User
	Description       *string
	ParentID          *string
	Size              int64
	UploadLocation    string
	Count             int
	Link              string
	Type              string
	SharedWith        SharedWith
	CreatedTime       time.Time
	UpdatedTime       time.Time
	ClientUpdatedTime time.Time
}

// Quota is the storage quota of the user's drive, in bytes.
type Quota struct {
	Quota     int64
	Available int64
}

// Used returns the number of bytes in use.
func (q Quota) Used() int64 {
	return q.Quota - q.Available
}

// Me is the signed-in user's profile.
type Me struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Link        string `json:"link"`
	Gender      string `json:"gender"`
	Locale      string `json:"locale"`
	UpdatedTime string `json:"updated_time"`
}

// readFrom maps the optional embedded "from" object.
func (r *fieldReader) readFrom() *User {
	sub := r.optObject("from")
	if sub == nil {
		return nil
	}
	var user User
	r.nested("from", sub, func(fr *fieldReader) {
		user.ID = fr.str("id")
		user.Name = fr.str("name")
	})
	return &user
}

// readSharedWith maps the required embedded "shared_with" object.
func (r *fieldReader) readSharedWith() SharedWith {
	sub := r.object("shared_with")
	var level SharedWith
	r.nested("shared_with", sub, func(fr *fieldReader) {
		access := fr.str("access")
		if fr.err != nil {
			return
		}
		parsed, err := ParseSharedWith(access)
		if err != nil {
			fr.fail("access", err)
			return
		}
		level = parsed
	})
	return level
}

func (r *fieldReader) readLocation() *Location {
	sub := r.optObject("location")
	if sub == nil {
		return nil
	}
	var loc Location
	r.nested("location", sub, func(fr *fieldReader) {
		loc.Longitude = fr.float("longitude")
		loc.Latitude = fr.float("latitude")
		loc.Altitude = fr.float("altitude")
	})
	return &loc
}

func (r *fieldReader) readImages() []ImageItem {
	raw := r.list("images")
	images := make([]ImageItem, 0, len(raw))
	for i, entry := range raw {
		key := fmt.Sprintf("images[%d]", i)
		sub := r.asObject(key, entry)
		var img ImageItem
		r.nested(key, sub, func(fr *fieldReader) {
			img.Height = fr.float("height")
			img.Width = fr.float("width")
			img.Source = fr.str("source")
			img.Type = fr.str("type")
		})
		if r.err != nil {
			return []ImageItem{}
		}
		images = append(images, img)
	}
	return images
}
