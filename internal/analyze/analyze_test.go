package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_NameStatusParsing(t *testing.T) {
	tests := map[string]struct {
		nameStatus string
		expected   ChangeSet
	}{
		"mixed statuses": {
			nameStatus: "A\tsrc/new.ts\nM\tsrc/old.ts\nD\tsrc/gone.ts\n",
			expected: ChangeSet{
				Added:    []string{"src/new.ts"},
				Modified: []string{"src/old.ts"},
				Deleted:  []string{"src/gone.ts"},
			},
		},
		"rename with destination": {
			nameStatus: "R100\tsrc/a.ts\tsrc/b.ts\n",
			expected: ChangeSet{
				Renamed: []Rename{{From: "src/a.ts", To: "src/b.ts"}},
			},
		},
		"rename without destination": {
			nameStatus: "R\tsrc/a.ts\n",
			expected: ChangeSet{
				Renamed: []Rename{{From: "src/a.ts"}},
			},
		},
		"skips malformed lines": {
			nameStatus: "garbage\nM\tsrc/ok.ts\n\n",
			expected: ChangeSet{
				Modified: []string{"src/ok.ts"},
			},
		},
		"empty input": {
			nameStatus: "",
			expected:   ChangeSet{},
		},
		"path on both added and modified lines is kept twice": {
			nameStatus: "A\tsrc/dup.ts\nM\tsrc/dup.ts\n",
			expected: ChangeSet{
				Added:    []string{"src/dup.ts"},
				Modified: []string{"src/dup.ts"},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			changes, _ := Classify(tc.nameStatus, "")
			assert.Equal(t, tc.expected, changes)
		})
	}
}

func TestClassify_PathInference(t *testing.T) {
	tests := map[string]struct {
		nameStatus    string
		components    []string
		technical     []string
		notComponents []string
	}{
		"component directory": {
			nameStatus: "A\tsrc/components/Button/index.tsx\n",
			components: []string{"Button component"},
		},
		"component file yields extensionless label": {
			nameStatus: "A\tsrc/components/Foo.tsx\n",
			components: []string{"Foo component"},
		},
		"route file": {
			nameStatus: "M\tapp/routes/dashboard.tsx\n",
			components: []string{"dashboard route"},
		},
		"hook file": {
			nameStatus: "A\tsrc/hooks/useAuth.ts\n",
			components: []string{"useAuth hook"},
		},
		"convex directory": {
			nameStatus: "M\tapp/convex/messages.ts\n",
			technical:  []string{"Convex backend functions"},
		},
		"schema path": {
			nameStatus: "M\tconvex/schema.ts\n",
			technical:  []string{"Database schema"},
		},
		"deleted paths do not contribute": {
			nameStatus:    "D\tsrc/components/Old/index.tsx\n",
			notComponents: []string{"Old component"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, analysis := Classify(tc.nameStatus, "")
			for _, c := range tc.components {
				assert.True(t, analysis.Components[c], "expected component %q", c)
			}
			for _, c := range tc.notComponents {
				assert.False(t, analysis.Components[c], "unexpected component %q", c)
			}
			for _, tech := range tc.technical {
				assert.Contains(t, analysis.Technical, tech)
			}
		})
	}
}

func TestClassify_PatchFeatures(t *testing.T) {
	tests := map[string]struct {
		patch    string
		features []string
	}{
		"named function declaration": {
			patch:    "+function computeTotals(items) {\n",
			features: []string{"New function: computeTotals"},
		},
		"exported async function": {
			patch:    "+export async function fetchUser(id) {\n",
			features: []string{"New function: fetchUser"},
		},
		"const arrow function": {
			patch:    "+export const formatDate = (d) => d.toISOString()\n",
			features: []string{"New function: formatDate"},
		},
		"router endpoint": {
			patch:    "+router.get('/users', listUsers)\n",
			features: []string{"API endpoint changes"},
		},
		"app endpoint": {
			patch:    "+app.post('/login', handleLogin)\n",
			features: []string{"API endpoint changes"},
		},
		"diff header is not an added line": {
			patch:    "+++ b/src/utils.ts\n",
			features: nil,
		},
		"removed lines are ignored": {
			patch:    "-function gone() {\n",
			features: nil,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, analysis := Classify("", tc.patch)
			assert.Equal(t, tc.features, analysis.Features)
		})
	}
}

func TestClassify_PatchComponents(t *testing.T) {
	_, analysis := Classify("", "+export default function ProfileCard() {\n")
	assert.True(t, analysis.Components["ProfileCard component"])
}

func TestClassify_TechnologyKeywords(t *testing.T) {
	patch := "+import { convexClient } from './convex'\n-old clerk setup\n+drizzle schema migration\n"
	_, analysis := Classify("", patch)

	assert.Contains(t, analysis.Technical, "Convex integration")
	assert.Contains(t, analysis.Technical, "Clerk authentication")
	assert.Contains(t, analysis.Technical, "Drizzle ORM")
	assert.Contains(t, analysis.Technical, "Database migrations")
}

func TestClassify_FeatureOrderPreserved(t *testing.T) {
	patch := "+function second() {\n+router.get('/x', h)\n+function second() {\n"
	_, analysis := Classify("", patch)

	assert.Equal(t, []string{
		"New function: second",
		"API endpoint changes",
		"New function: second",
	}, analysis.Features)
}
