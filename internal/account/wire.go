package account

import (
	"backoffice/internal/api"
	"backoffice/internal/domain"
	"backoffice/internal/panel"

	"go.uber.org/zap"
)

// NewPanel wires the generic engine for the account domain. Creation goes to
// the register sub-path; accounts are the only domain with a bifurcated
// create endpoint, expressed purely through configuration.
func NewPanel(client *api.Client, baseURL string, logger *zap.Logger) *panel.Engine[domain.Account] {
	basePath := api.JoinURL(baseURL, "/accounts")

	cfg := panel.Config[domain.Account]{
		Key:        "accounts",
		Name:       "Account",
		Plural:     "accounts",
		BasePath:   basePath,
		CreatePath: basePath + "/register",
		Fields: []panel.FieldSpec{
			{Name: "name", Kind: panel.FieldText, Required: true},
			{Name: "email", Kind: panel.FieldText, Required: true},
			{Name: "password", Kind: panel.FieldText, Required: true},
			{Name: "role", Kind: panel.FieldSelect, Required: true, Default: domain.RoleUser, Options: domain.AccountRoles()},
		},
		ToDraft: func(a domain.Account) panel.Draft {
			return panel.Draft{
				"name":     a.Name,
				"email":    a.Email,
				"password": a.Password,
				"role":     a.Role,
			}
		},
		CreatedMessage: "Account registered successfully!",
	}

	return panel.NewEngine(cfg, client, logger)
}
