package cli

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/wyrelang/wyre/lexer"
	"github.com/wyrelang/wyre/parser"
)

func TestDumpFile(t *testing.T) {
	src := `@test
function main(a: u32) -> u32 {
    let mut total = a + 1u32;
    return total;
}`

	file, err := parser.Parse(src)
	assert.NoError(t, err)

	dump := DumpFile(file)
	assert.Equal(t, "file", dump["kind"].(string))

	declarations := dump["declarations"].([]any)
	assert.Equal(t, 1, len(declarations))

	fn := declarations[0].(map[string]any)
	assert.Equal(t, "function", fn["kind"].(string))
	assert.Equal(t, "main", fn["name"].(string))
	assert.False(t, fn["const"].(bool))
	assert.Equal(t, "u32", fn["return_type"].(string))

	annotations := fn["annotations"].([]any)
	assert.Equal(t, 1, len(annotations))
	assert.Equal(t, "test", annotations[0].(string))

	parameters := fn["parameters"].([]any)
	assert.Equal(t, 1, len(parameters))

	param := parameters[0].(map[string]any)
	assert.Equal(t, "a", param["name"].(string))
	assert.False(t, param["mutable"].(bool))
	assert.Equal(t, "u32", param["type"].(string))

	body := fn["body"].(map[string]any)
	statements := body["statements"].([]any)
	assert.Equal(t, 2, len(statements))

	let := statements[0].(map[string]any)
	assert.Equal(t, "let", let["kind"].(string))
	assert.Equal(t, "total", let["name"].(string))
	assert.True(t, let["mutable"].(bool))
	assert.False(t, let["const"].(bool))

	_, hasType := let["type"]
	assert.False(t, hasType)

	value := let["value"].(map[string]any)
	assert.Equal(t, "binary", value["kind"].(string))
	assert.Equal(t, "+", value["op"].(string))

	right := value["right"].(map[string]any)
	assert.Equal(t, "integer", right["kind"].(string))
	assert.Equal(t, "1", right["value"].(string))
	assert.Equal(t, "u32", right["suffix"].(string))

	ret := statements[1].(map[string]any)
	assert.Equal(t, "return", ret["kind"].(string))
}

func TestDumpExpressionIntegerWithoutSuffix(t *testing.T) {
	expr, err := parser.ParseExpression("42")
	assert.NoError(t, err)

	dump := dumpExpression(expr)
	assert.Equal(t, "integer", dump["kind"].(string))
	assert.Equal(t, "42", dump["value"].(string))

	_, hasSuffix := dump["suffix"]
	assert.False(t, hasSuffix)
}

func TestDumpExpressionCircuitInitShorthand(t *testing.T) {
	expr, err := parser.ParseExpression("Point { x, y: 1u32 }")
	assert.NoError(t, err)

	dump := dumpExpression(expr)
	assert.Equal(t, "circuit_init", dump["kind"].(string))
	assert.Equal(t, "Point", dump["name"].(string))

	members := dump["members"].([]any)
	assert.Equal(t, 2, len(members))

	first := members[0].(map[string]any)
	assert.Equal(t, "x", first["name"].(string))

	_, hasValue := first["value"]
	assert.False(t, hasValue)

	second := members[1].(map[string]any)
	assert.Equal(t, "y", second["name"].(string))

	value := second["value"].(map[string]any)
	assert.Equal(t, "integer", value["kind"].(string))
}

func TestDumpTokens(t *testing.T) {
	tokens, err := lexer.New("let x").Scan()
	assert.NoError(t, err)

	dump := DumpTokens(tokens)
	assert.Equal(t, 2, len(dump))

	assert.Equal(t, "let", dump[0]["type"].(string))
	assert.Equal(t, "let", dump[0]["text"].(string))
	assert.Equal(t, "1:1-4", dump[0]["span"].(string))

	assert.Equal(t, "identifier", dump[1]["type"].(string))
	assert.Equal(t, "x", dump[1]["text"].(string))
	assert.Equal(t, "1:5-6", dump[1]["span"].(string))
}

func TestSummarizeFile(t *testing.T) {
	src := `const LIMIT: u32 = 100;
circuit Point {
    x: u32,
}
function main(a: u32) -> u32 {
    return a;
}`

	file, err := parser.Parse(src)
	assert.NoError(t, err)

	lines := SummarizeFile(file)
	assert.Equal(t, []string{
		"const LIMIT = 100 [1:1-24]",
		"circuit Point (1 members) [2:1-4:2]",
		"function main (1 parameters) [5:1-7:2]",
	}, lines)
}
