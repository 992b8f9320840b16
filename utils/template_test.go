package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplate(t *testing.T) {
	t.Run("substitutes every occurrence", func(t *testing.T) {
		out := RenderTemplate("Hi {{name}}, yes you, {{name}}!", map[string]string{"name": "Aisha"})
		assert.Equal(t, "Hi Aisha, yes you, Aisha!", out)
	})

	t.Run("unknown placeholders survive verbatim", func(t *testing.T) {
		out := RenderTemplate("Hi {{name}}, ref {{booking_id}}", map[string]string{"name": "Aisha"})
		assert.Equal(t, "Hi Aisha, ref {{booking_id}}", out)
	})

	t.Run("no variables returns the template unchanged", func(t *testing.T) {
		tpl := "Dear {{customer_name}}"
		assert.Equal(t, tpl, RenderTemplate(tpl, nil))
		assert.Equal(t, tpl, RenderTemplate(tpl, map[string]string{}))
	})

	t.Run("rendering twice changes nothing further", func(t *testing.T) {
		vars := map[string]string{"tour_name": "Marina Sunset", "total_price": "AED 1,500"}
		once := RenderTemplate("{{tour_name}} for {{total_price}} ({{missing}})", vars)
		twice := RenderTemplate(once, vars)
		assert.Equal(t, once, twice)
	})

	t.Run("values containing braces are not re-expanded", func(t *testing.T) {
		out := RenderTemplate("{{a}} {{b}}", map[string]string{"a": "{{b}}", "b": "two"})
		assert.Equal(t, "{{b}} two", out)
	})
}

func TestPlaceholders(t *testing.T) {
	names := Placeholders("Hi {{name}}, your {{tour}} on {{date}}. Bye {{name}}.")
	assert.Equal(t, []string{"name", "tour", "date"}, names)

	assert.Empty(t, Placeholders("no placeholders here"))
	assert.Empty(t, Placeholders("malformed {{ name }} and {single}"))
}

func TestUnresolvedPlaceholders(t *testing.T) {
	declared := []string{"customer_name", "tour_name"}

	unresolved := UnresolvedPlaceholders("Hi {{customer_name}}, {{tour_nam}} awaits", declared)
	assert.Equal(t, []string{"tour_nam"}, unresolved)

	assert.Empty(t, UnresolvedPlaceholders("Hi {{customer_name}}", declared))
}

func TestValidateTemplate(t *testing.T) {
	declared := []string{"customer_name", "booking_id"}

	t.Run("accepts templates using only declared variables", func(t *testing.T) {
		assert.NoError(t, ValidateTemplate("Booking {{booking_id}}", "Hi {{customer_name}}", declared))
	})

	t.Run("rejects a typo and names it", func(t *testing.T) {
		err := ValidateTemplate("Booking {{booking_id}}", "Hi {{customer_nam}}", declared)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer_nam")
	})

	t.Run("reports each undeclared variable once", func(t *testing.T) {
		err := ValidateTemplate("{{oops}}", "{{oops}} and {{also_bad}}", declared)
		require.Error(t, err)
		assert.Equal(t, "template references undeclared variables: oops, also_bad", err.Error())
	})
}
