package derive

// ServiceValueLength is the digit count of [Engine.ServiceValue].
const ServiceValueLength = 20

// Codes is the pair of secrets derived for one service and account.
type Codes struct {
	Password string
	PIN      string
}

// Context joins a service identifier and an account identifier into a
// derivation context.  The two are concatenated without a separator.
func Context(service, account string) string {
	return service + account
}

// ServiceValue derives the stable identifier of a service: a PIN of
// [ServiceValueLength] digits over the service name.
func (e *Engine) ServiceValue(key, name string) (string, error) {
	return e.PIN(key, name, ServiceValueLength)
}

// Codes derives the password and PIN for account at service, both of
// policy.Length characters.  service is normally a value returned by
// [Engine.ServiceValue].
func (e *Engine) Codes(key, service, account string, policy Policy) (Codes, error) {
	if err := policy.Validate(); err != nil {
		return Codes{}, err
	}
	ctx := Context(service, account)
	pw, err := e.Password(key, ctx, policy.Length, policy)
	if err != nil {
		return Codes{}, err
	}
	pin, err := e.PIN(key, ctx, policy.Length)
	if err != nil {
		return Codes{}, err
	}
	return Codes{Password: pw, PIN: pin}, nil
}

// ServiceValue derives a service identifier with the default engine.
func ServiceValue(key, name string) (string, error) {
	return defaultEngine.ServiceValue(key, name)
}
