package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"

	"pkgdetect/internal/types"
)

// CompareDotted orders two dotted version strings by numeric component
// comparison. Missing trailing components count as zero, so "2.0" and
// "2.0.0" compare equal while "1.10" sorts above "1.9". A component's
// leading digit run is compared numerically; any non-numeric remainder
// breaks ties ordinally ("1.2rc" > "1.2").
func CompareDotted(a string, b string) int {
	as := strings.Split(strings.TrimSpace(a), ".")
	bs := strings.Split(strings.TrimSpace(b), ".")
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		var ac, bc string
		if i < len(as) {
			ac = as[i]
		}
		if i < len(bs) {
			bc = bs[i]
		}
		if c := compareComponent(ac, bc); c != 0 {
			return c
		}
	}
	return 0
}

func compareComponent(a string, b string) int {
	an, arest := splitNumeric(a)
	bn, brest := splitNumeric(b)
	if an != bn {
		if an < bn {
			return -1
		}
		return 1
	}
	return strings.Compare(arest, brest)
}

// splitNumeric returns the value of the leading digit run and whatever
// follows it. An empty or non-numeric component yields zero.
func splitNumeric(component string) (int, string) {
	i := 0
	for i < len(component) && component[i] >= '0' && component[i] <= '9' {
		i++
	}
	value := 0
	for _, d := range component[:i] {
		value = value*10 + int(d-'0')
	}
	return value, component[i:]
}

// versionAcceptable checks a discovered version against a constraint
// under the constraint's scheme. Parse failures are reported so the
// caller can treat them as a soft authoring defect rather than abort.
func versionAcceptable(found string, constraint types.VersionConstraint) (bool, error) {
	switch constraint.Scheme {
	case types.VersionSchemeDeb:
		return debAcceptable(found, constraint)
	case types.VersionSchemePep440:
		return pep440Acceptable(found, constraint)
	case types.VersionSchemeDotted, "":
		cmp := CompareDotted(found, constraint.Minimum)
		if constraint.Exact {
			return cmp == 0, nil
		}
		return cmp >= 0, nil
	default:
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported version scheme: %s", constraint.Scheme))
	}
}

func debAcceptable(found string, constraint types.VersionConstraint) (bool, error) {
	v, err := debversion.NewVersion(found)
	if err != nil {
		return false, err
	}
	m, err := debversion.NewVersion(constraint.Minimum)
	if err != nil {
		return false, err
	}
	if constraint.Exact {
		return v.Equal(m), nil
	}
	return v.Equal(m) || v.GreaterThan(m), nil
}

func pep440Acceptable(found string, constraint types.VersionConstraint) (bool, error) {
	v, err := pep440.Parse(found)
	if err != nil {
		return false, err
	}
	op := ">="
	if constraint.Exact {
		op = "=="
	}
	spec, err := pep440.NewSpecifiers(fmt.Sprintf("%s %s", op, constraint.Minimum))
	if err != nil {
		return false, err
	}
	return spec.Check(v), nil
}
