package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRead(t *testing.T) {
	cases := map[string]struct {
		args []string
		want string
	}{
		"no args": {nil, "input"},
		"silent":  {[]string{"-s"}, "input -s"},
		"prompt": {
			[]string{"-p", "Enter value: "},
			`print "Enter value: "; input`,
		},
		"single variable": {
			[]string{"var"},
			"input | $env.var = $in",
		},
		"multiple variables": {
			[]string{"var1", "var2"},
			`input | split words | $env.var1 = ($in | get 0 | default ""); $env.var2 = ($in | get 1 | default "")`,
		},
		"timeout": {
			[]string{"-t", "5"},
			"input # timeout: 5s",
		},
		"delimiter": {
			[]string{"-d", ":"},
			"input # delimiter: :",
		},
		"silent with prompt": {
			[]string{"-s", "-p", "Password: "},
			`print "Password: "; input -s`,
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tc.want, Read(tc.args))
		})
	}
}
