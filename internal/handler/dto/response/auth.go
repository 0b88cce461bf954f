package response

import "agent-portal/internal/usecase/commands"

type AgentResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	Agent       AgentResponse `json:"agent"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

func FromSession(s *commands.Session) *LoginResponse {
	return &LoginResponse{
		AccessToken: s.AccessToken,
		Agent: AgentResponse{
			ID:    s.Agent.ID,
			Name:  s.Agent.Name,
			Email: s.Agent.Email,
		},
	}
}
