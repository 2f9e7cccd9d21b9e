package docs

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type swaggerDoc struct {
	Paths map[string]map[string]struct {
		Description string `json:"description"`
		Responses   map[string]struct {
			Description string `json:"description"`
		} `json:"responses"`
	} `json:"paths"`
}

func TestCrearCliente_Documenta409(t *testing.T) {
	raw, err := os.ReadFile("swagger.json")
	require.NoError(t, err)

	fuentes := map[string]string{
		"swagger.json": string(raw),
		"docTemplate":  SwaggerInfo.ReadDoc(),
	}
	for nombre, src := range fuentes {
		t.Run(nombre, func(t *testing.T) {
			var doc swaggerDoc
			require.NoError(t, json.Unmarshal([]byte(src), &doc))

			post := doc.Paths["/customers"]["post"]
			assert.Contains(t, post.Description, "409")
			require.Contains(t, post.Responses, "409")
			assert.Equal(t, "Customer already exists", post.Responses["409"].Description)
		})
	}
}
