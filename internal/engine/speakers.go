package engine

import (
	"fmt"
	"strings"
)

// Speaker is a predefined voice baked into the custom-voice models.
type Speaker struct {
	Name     string
	Language string
	Gender   string
}

// Speakers is the fixed catalog shipped with the CustomVoice models. The
// language column is informational; it is not enforced against --language.
var Speakers = []Speaker{
	{Name: "Aiden", Language: "English", Gender: "Male"},
	{Name: "Cherry", Language: "Chinese/English", Gender: "Female"},
	{Name: "Ethan", Language: "Chinese/English", Gender: "Male"},
	{Name: "Chelsie", Language: "Chinese/English", Gender: "Female"},
	{Name: "Serena", Language: "Chinese/English", Gender: "Female"},
	{Name: "Dylan", Language: "Chinese (Beijing)", Gender: "Male"},
	{Name: "Jada", Language: "Chinese (Shanghai)", Gender: "Female"},
	{Name: "Sunny", Language: "Chinese (Sichuan)", Gender: "Female"},
}

// UnknownSpeakerError reports a name outside the catalog and carries the
// valid names so callers can print them.
type UnknownSpeakerError struct {
	Name  string
	Valid []string
}

func (e *UnknownSpeakerError) Error() string {
	return fmt.Sprintf("unknown speaker %q (valid: %s)", e.Name, strings.Join(e.Valid, ", "))
}

// LookupSpeaker finds a catalog entry by name, ignoring case.
func LookupSpeaker(name string) (Speaker, error) {
	for _, s := range Speakers {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return Speaker{}, &UnknownSpeakerError{Name: name, Valid: SpeakerNames()}
}

// SpeakerNames returns the catalog names in listing order.
func SpeakerNames() []string {
	names := make([]string, len(Speakers))
	for i, s := range Speakers {
		names[i] = s.Name
	}
	return names
}
