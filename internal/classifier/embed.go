package classifier

import _ "embed"

//go:embed rules.yaml
var defaultRules []byte
