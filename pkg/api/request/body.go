package request

// Body is the raw request body, kept unparsed for signature checks.
type Body []byte
