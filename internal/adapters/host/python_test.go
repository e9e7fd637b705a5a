package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamal-hamza/mx-cli/internal/core/domain"
	"github.com/kamal-hamza/mx-cli/internal/core/ports"
)

func TestPyString(t *testing.T) {
	assert.Equal(t, `"pCube1"`, pyString("pCube1"))
	assert.Equal(t, `"C:\\scenes\\a.mb"`, pyString(`C:\scenes\a.mb`))
	assert.Equal(t, `"say \"hi\""`, pyString(`say "hi"`))
	assert.Equal(t, `"/proj/R&D/<shot>.ma"`, pyString("/proj/R&D/<shot>.ma"))
}

func TestPyValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "None"},
		{true, "True"},
		{false, "False"},
		{3, "3"},
		{int64(-7), "-7"},
		{1.5, "1.5"},
		{"x", `"x"`},
		{[]string{"a", "b"}, `["a", "b"]`},
		{[]any{1, "b", false}, `[1, "b", False]`},
	}

	for _, tt := range tests {
		got, err := pyValue(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := pyValue(map[string]int{"a": 1})
	assert.Error(t, err)
}

func TestSelectExpr(t *testing.T) {
	assert.Equal(t,
		`[__import__("maya.cmds").cmds.select(clear=True), __import__("maya.cmds").cmds.select(["a", "ns:b"])]`,
		selectExpr([]string{"a", "ns:b"}, true))

	assert.Equal(t,
		`__import__("maya.cmds").cmds.select(["a"], add=True)`,
		selectExpr([]string{"a"}, false))

	assert.Equal(t, `__import__("maya.cmds").cmds.select(clear=True)`, selectExpr(nil, true))
	assert.Equal(t, "None", selectExpr(nil, false))
}

func TestExportExpr(t *testing.T) {
	expr := exportExpr(ports.ExportRequest{
		Path:           "/lib/chair.model/chair.mb",
		Format:         domain.MayaBinary,
		ForceOverwrite: true,
		StripUIConfig:  true,
	})

	assert.Equal(t,
		`__import__("maya.cmds").cmds.file("/lib/chair.model/chair.mb", force=True, options="v=0", type="mayaBinary", uiConfiguration=False, exportSelected=True)`,
		expr)
}

func TestImportExpr(t *testing.T) {
	t.Run("reference with namespace and group", func(t *testing.T) {
		expr, err := importExpr(ports.ImportRequest{
			Path:       "/lib/propA.model/propA.ma",
			Mode:       domain.LoadReference,
			Namespace:  "propA003",
			GroupName:  "propA003_grp",
			FormatHint: domain.MayaASCII,
		})
		require.NoError(t, err)
		assert.Equal(t,
			`__import__("maya.cmds").cmds.file("/lib/propA.model/propA.ma", r=True, options="v=0;", type="mayaAscii", namespace="propA003", groupReference=True, groupName="propA003_grp")`,
			expr)
	})

	t.Run("plain import", func(t *testing.T) {
		expr, err := importExpr(ports.ImportRequest{
			Path: "/lib/a/a.fbx",
			Mode: domain.LoadImport,
		})
		require.NoError(t, err)
		assert.Equal(t,
			`__import__("maya.cmds").cmds.file("/lib/a/a.fbx", i=True, options="v=0;", groupReference=False)`,
			expr)
	})

	t.Run("host options are sorted", func(t *testing.T) {
		expr, err := importExpr(ports.ImportRequest{
			Path: "/a.mb",
			Mode: domain.LoadImport,
			Options: map[string]any{
				"mergeNamespacesOnClash": false,
				"loadReferenceDepth":     "none",
			},
		})
		require.NoError(t, err)
		assert.Contains(t, expr, `groupReference=False, loadReferenceDepth="none", mergeNamespacesOnClash=False)`)
	})

	t.Run("reserved option rejected", func(t *testing.T) {
		_, err := importExpr(ports.ImportRequest{
			Path:    "/a.mb",
			Mode:    domain.LoadImport,
			Options: map[string]any{"namespace": "x"},
		})
		assert.Error(t, err)
	})

	t.Run("non identifier option rejected", func(t *testing.T) {
		_, err := importExpr(ports.ImportRequest{
			Path:    "/a.mb",
			Mode:    domain.LoadImport,
			Options: map[string]any{"a=1;b": true},
		})
		assert.Error(t, err)
	})
}

func TestAttributeExprs(t *testing.T) {
	assert.Equal(t, `__import__("maya.cmds").cmds.objExists("pCube1.tx")`, attrExistsExpr("pCube1", "tx"))
	assert.Equal(t, `__import__("maya.cmds").cmds.getAttr("pCube1.tx")`, attrValueExpr("pCube1", "tx"))
	assert.Equal(t, `__import__("maya.cmds").cmds.getAttr("pCube1.tx", type=True)`, attrTypeExpr("pCube1", "tx"))
	assert.Equal(t, `__import__("maya.cmds").cmds.namespace(exists="shot000")`, namespaceExistsExpr("shot000"))
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, isIdentifier("loadReferenceDepth"))
	assert.True(t, isIdentifier("_x1"))
	assert.False(t, isIdentifier(""))
	assert.False(t, isIdentifier("1x"))
	assert.False(t, isIdentifier("a-b"))
}
