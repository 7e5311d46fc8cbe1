package param

import (
	"encoding/json"
	"net/http"

	"tokenledger/core"

	"github.com/asaskevich/govalidator"
	"github.com/gorilla/schema"
	"github.com/twitchtv/twirp"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.SetAliasTag("json")
	decoder.IgnoreUnknownKeys(true)
}

type validator interface {
	Validate() error
}

// Binding decode query (GET) or json body into v and validate it
func Binding(r *http.Request, v interface{}) error {
	if r.Method == http.MethodGet {
		if err := decoder.Decode(v, r.URL.Query()); err != nil {
			return twirp.InvalidArgumentError("query", err.Error())
		}
	} else if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if _, ok := core.ErrorCodeOf(err); ok {
			return err
		}

		return twirp.InvalidArgumentError("body", err.Error())
	}

	if _, err := govalidator.ValidateStruct(v); err != nil {
		return twirp.InvalidArgumentError("params", err.Error())
	}

	if vv, ok := v.(validator); ok {
		return vv.Validate()
	}

	return nil
}
