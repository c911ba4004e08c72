package api

import "strconv"

// User mirrors the server-owned user record. Optional attributes are
// pointers so an absent field can be told apart from a zero value.
type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	ProfileImage string   `json:"profileImage"`
	Height       *float64 `json:"height"`
	Weight       *float64 `json:"weight"`
	Gender       *string  `json:"gender"`
	Age          *int     `json:"age"`
}

// Placeholder values shown when the server omits an attribute.
const (
	MissingValue        = "N/A"
	DefaultProfileImage = "/default-profile.png"
)

// DisplayImage returns the profile image path, falling back to the
// placeholder image.
func (u *User) DisplayImage() string {
	if u.ProfileImage == "" {
		return DefaultProfileImage
	}
	return u.ProfileImage
}

// DisplayHeight returns the height for display, or "N/A" when absent.
func (u *User) DisplayHeight() string {
	return displayFloat(u.Height)
}

// DisplayWeight returns the weight for display, or "N/A" when absent.
func (u *User) DisplayWeight() string {
	return displayFloat(u.Weight)
}

// DisplayGender returns the gender for display, or "N/A" when absent.
func (u *User) DisplayGender() string {
	if u.Gender == nil || *u.Gender == "" {
		return MissingValue
	}
	return *u.Gender
}

// DisplayAge returns the age for display, or "N/A" when absent.
func (u *User) DisplayAge() string {
	if u.Age == nil {
		return MissingValue
	}
	return trimFloat(float64(*u.Age))
}

func displayFloat(v *float64) string {
	if v == nil {
		return MissingValue
	}
	return trimFloat(*v)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ProfileUpdate is the body of PUT /api/users/profile.
type ProfileUpdate struct {
	UserID   string  `json:"userId"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Gender   string  `json:"gender"`
	Age      int     `json:"age"`
}

// WorkoutEntry is one recorded exercise session. At submission time
// len(RepsPerSet) == len(WeightPerSet) == Sets.
type WorkoutEntry struct {
	MuscleGroup  string    `json:"muscleGroup"`
	Exercise     string    `json:"exercise"`
	Sets         int       `json:"sets"`
	RepsPerSet   []int     `json:"repsPerSet"`
	WeightPerSet []float64 `json:"weightPerSet"`
}

// WorkoutRecord is a server-returned workout with its recorded date.
type WorkoutRecord struct {
	WorkoutEntry
	Date string `json:"date"`
}
