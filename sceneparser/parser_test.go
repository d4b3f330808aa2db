package sceneparser

import "testing"

func validTriangleJSON() string {
	return `{
		"vertex": [0,0,0, 1,0,0, 0,1,0],
		"scene": [0,1,2, 10, 0]
	}`
}

func TestParseValidTriangleScene(t *testing.T) {
	st, err := Parse([]byte(validTriangleJSON()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(st.Vertices) != 3 {
		t.Fatalf("Vertices = %d; want 3", len(st.Vertices))
	}
	if len(st.Objects) != 1 {
		t.Fatalf("Objects = %d; want 1", len(st.Objects))
	}
}

func TestParseRejectsGarbageJSON(t *testing.T) {
	_, err := Parse([]byte("not json"))
	if err == nil || err.Error() != "Not a valid JSON file" {
		t.Fatalf("err = %v; want %q", err, "Not a valid JSON file")
	}
}

func TestParseRejectsMissingVertexKey(t *testing.T) {
	_, err := Parse([]byte(`{"scene": [0,1,2,10,0]}`))
	if err == nil {
		t.Fatalf("expected error for missing vertex key")
	}
}

func TestParseRejectsMissingSceneKey(t *testing.T) {
	_, err := Parse([]byte(`{"vertex": [0,0,0]}`))
	if err == nil {
		t.Fatalf("expected error for missing scene key")
	}
}

func TestParseRejectsVertexArrayNotMultipleOfThree(t *testing.T) {
	_, err := Parse([]byte(`{"vertex": [0,0], "scene": [0,0,0,0,0]}`))
	if err == nil {
		t.Fatalf("expected error for vertex array not a multiple of three")
	}
}

func TestParseRejectsSceneArrayNotMultipleOfFive(t *testing.T) {
	_, err := Parse([]byte(`{"vertex": [0,0,0], "scene": [0,0,0,0]}`))
	if err == nil {
		t.Fatalf("expected error for scene array not a multiple of five")
	}
}

func TestParseRejectsNonIntegerSceneField(t *testing.T) {
	_, err := Parse([]byte(`{"vertex": [0,0,0], "scene": [0.5,0,0,0,0]}`))
	if err == nil {
		t.Fatalf("expected error for non-integer scene field")
	}
}

func TestParseRejectsNonFiniteVertex(t *testing.T) {
	_, err := Parse([]byte(`{"vertex": [0,0,1e400], "scene": [0,0,0,0,0]}`))
	if err == nil {
		t.Fatalf("expected error for non-finite vertex coordinate")
	}
}

func TestParseAcceptsRadiusPointAndLineStyles(t *testing.T) {
	raw := `{
		"vertex": [0,0,0, 0,1,0, 0,-1,0],
		"scene": [0,65535,0,0,0, 2,65535,65535,10,0],
		"radius": [1.5],
		"pstyle": [{"shape":"c","size":3,"stroke":0,"fill":31}],
		"lstyle": [{"width":2,"color":992}]
	}`
	st, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(st.Radii) != 1 {
		t.Fatalf("Radii = %d; want 1", len(st.Radii))
	}
	if len(st.PointStyles) != 1 {
		t.Fatalf("PointStyles = %d; want 1", len(st.PointStyles))
	}
	if len(st.LineStyles) != 1 {
		t.Fatalf("LineStyles = %d; want 1", len(st.LineStyles))
	}
}

func TestParseRejectsFillOnUnfillablePointStyle(t *testing.T) {
	raw := `{
		"vertex": [0,0,0],
		"scene": [0,65535,65535,0,0],
		"pstyle": [{"shape":"p","size":3,"stroke":0,"fill":31}]
	}`
	_, err := Parse([]byte(raw))
	if err == nil {
		t.Fatalf("expected error: plus markers may not have fill")
	}
}

func TestParseDelegatesSemanticValidationToStore(t *testing.T) {
	raw := `{"vertex": [0,0,0], "scene": [5,65535,65535,0,0]}`
	_, err := Parse([]byte(raw))
	if err == nil {
		t.Fatalf("expected error for out-of-range vertex index")
	}
}

func TestLoadDefaultSceneIsValid(t *testing.T) {
	st, err := LoadDefaultScene()
	if err != nil {
		t.Fatalf("LoadDefaultScene: %v", err)
	}
	if len(st.Vertices) != 120+2 {
		t.Fatalf("Vertices = %d; want %d", len(st.Vertices), 122)
	}
	if len(st.Objects) != 120+1 {
		t.Fatalf("Objects = %d; want %d", len(st.Objects), 121)
	}
	if len(st.PointStyles) != 1 || len(st.LineStyles) != 1 {
		t.Fatalf("default scene must define exactly one point style and one line style")
	}
}
