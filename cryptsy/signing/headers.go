package signing

import (
	"net/url"
	"strconv"

	"github.com/betbot/cryptsy/cryptsy/types"
)

const (
	HeaderKey  = "Key"
	HeaderSign = "Sign"
)

// SignedForm is a private request body ready to send.
type SignedForm struct {
	Body    string
	Nonce   int64
	Headers map[string]string
}

// SignForm copies params, adds method and nonce, encodes the form and signs
// the encoded bytes. params itself is left untouched.
func SignForm(creds types.Credentials, method string, params url.Values, nonce int64) *SignedForm {
	form := make(url.Values, len(params)+2)
	for k, v := range params {
		form[k] = append([]string(nil), v...)
	}
	form.Set("method", method)
	form.Set("nonce", strconv.FormatInt(nonce, 10))

	body := form.Encode()
	return &SignedForm{
		Body:  body,
		Nonce: nonce,
		Headers: map[string]string{
			HeaderKey:  creds.Key,
			HeaderSign: Sign(creds.Secret, body),
		},
	}
}
