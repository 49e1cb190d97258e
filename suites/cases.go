package suites

import (
	"github.com/reusee/realtype/asserts"
	"github.com/reusee/realtype/classify"
	"github.com/reusee/realtype/exprs"
	"github.com/reusee/realtype/rtconfigs"
)

// ConfigCases reports the cases defined in config files.
// The tags of each expression are compared as a [shallow, real] pair, unset expectations match anything.
func ConfigCases(r *asserts.Reporter, cases rtconfigs.Cases) {
	r.Block("config cases")
	for _, c := range cases {
		v, err := exprs.Eval(c.Expr)
		if err != nil {
			r.Test(c.Label, err, expectedTags(c, "", ""))
			continue
		}
		shallow := classify.GetType(v)
		realTag := classify.GetRealType(v)
		r.Test(
			c.Label,
			[]classify.Tag{shallow, realTag},
			expectedTags(c, shallow, realTag),
		)
	}
}

func expectedTags(c rtconfigs.Case, shallow, realTag classify.Tag) []classify.Tag {
	if c.Shallow != "" {
		shallow = classify.Tag(c.Shallow)
	}
	if c.Real != "" {
		realTag = classify.Tag(c.Real)
	}
	return []classify.Tag{shallow, realTag}
}
