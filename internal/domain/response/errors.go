package response

// Message is the envelope of every error reply.
type Message struct {
	Message string `json:"message"`
}

type APIError struct {
	Address     string `json:"address"`
	Type        int    `json:"type"`
	Description string `json:"description"`
}

type ErrorItem struct {
	Error APIError `json:"error"`
}

// GroupActionError is returned to group 0 actions. Logitech Pop needs an
// answer but only lights are emulated.
func GroupActionError() []ErrorItem {
	return []ErrorItem{{Error: APIError{
		Address:     "/groups/0/action/scene",
		Type:        7,
		Description: "invalid value, dummy for parameter, scene",
	}}}
}

// Username is the fixed username handed out to every client.
const Username = "12345678901234567890"

type UsernameSuccess struct {
	Success struct {
		Username string `json:"username"`
	} `json:"success"`
}

func NewUsernameSuccess() []UsernameSuccess {
	var s UsernameSuccess
	s.Success.Username = Username
	return []UsernameSuccess{s}
}
