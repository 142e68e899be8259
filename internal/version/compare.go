package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// CheckCompatibility checks that a config written for required can run on engineVersion.
//
// required is either a plain version or a semver constraint:
//   - "main" on either side skips the check (development builds)
//   - a plain version must match major and minor; patch may differ
//   - a constraint ("^1.2", ">= 1.0, < 2.0") must be satisfied by the engine
//
// Examples:
//   - Engine 1.2.1, config 1.2.0 -> OK (patch differs)
//   - Engine 1.3.0, config 1.2.0 -> ERROR (minor differs)
//   - Engine 2.0.0, config ^1.0 -> ERROR (constraint not met)
func CheckCompatibility(engineVersion, required string) error {
	engineVersion = strings.TrimPrefix(strings.TrimSpace(engineVersion), "v")
	required = strings.TrimPrefix(strings.TrimSpace(required), "v")

	if engineVersion == "main" || required == "main" || required == "" {
		return nil
	}

	engineSemver, err := semver.NewVersion(engineVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid engine version '%s'", engineVersion)
	}

	requiredSemver, err := semver.NewVersion(required)
	if err != nil {
		constraint, constraintErr := semver.NewConstraint(required)
		if constraintErr != nil {
			return errors.Wrapf(errors.ErrCodeInvalidVersion, constraintErr, "invalid required version '%s'", required)
		}

		if !constraint.Check(engineSemver) {
			return errors.Newf(errors.ErrCodeVersionMismatch, "engine version %s does not satisfy '%s'", engineSemver, required)
		}

		return nil
	}

	if engineSemver.Major() != requiredSemver.Major() {
		return errors.Newf(errors.ErrCodeVersionMismatch, "major version mismatch: engine is %d.x.x but config requires %d.x.x",
			engineSemver.Major(), requiredSemver.Major())
	}

	if engineSemver.Minor() != requiredSemver.Minor() {
		return errors.Newf(errors.ErrCodeVersionMismatch, "minor version mismatch: engine is %d.%d.x but config requires %d.%d.x",
			engineSemver.Major(), engineSemver.Minor(),
			requiredSemver.Major(), requiredSemver.Minor())
	}

	return nil
}
