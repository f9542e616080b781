package ciutil

// Getenv looks up an environment variable, returning "" when unset.
type Getenv func(string) string

// CI environment detection variables.
const (
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"
	EnvJenkinsURL    = "JENKINS_URL"
	EnvTravisCI      = "TRAVIS"
	EnvCircleCI      = "CIRCLECI"
)

// Provider names reported by DetectProvider.
const (
	ProviderNone          = ""
	ProviderGitHubActions = "github_actions"
	ProviderGitLabCI      = "gitlab_ci"
	ProviderJenkins       = "jenkins"
	ProviderTravisCI      = "travis_ci"
	ProviderCircleCI      = "circleci"
	ProviderGeneric       = "generic"
)

// Metadata keys returned by Metadata.
const (
	KeyProvider = "ci_provider"
	KeyCommit   = "ci_commit"
	KeyRunID    = "ci_run_id"
	KeyJob      = "ci_job"
	KeyWorkflow = "ci_workflow"
	KeyRef      = "ci_ref"
)

// providerVars maps metadata keys to each provider's environment variables.
var providerVars = map[string]map[string]string{
	ProviderGitHubActions: {
		KeyCommit:   "GITHUB_SHA",
		KeyRunID:    "GITHUB_RUN_ID",
		KeyJob:      "GITHUB_JOB",
		KeyWorkflow: "GITHUB_WORKFLOW",
		KeyRef:      "GITHUB_REF_NAME",
	},
	ProviderGitLabCI: {
		KeyCommit: "CI_COMMIT_SHA",
		KeyRunID:  "CI_PIPELINE_ID",
		KeyJob:    "CI_JOB_NAME",
		KeyRef:    "CI_COMMIT_REF_NAME",
	},
	ProviderJenkins: {
		KeyCommit: "GIT_COMMIT",
		KeyRunID:  "BUILD_NUMBER",
		KeyJob:    "JOB_NAME",
	},
	ProviderTravisCI: {
		KeyCommit: "TRAVIS_COMMIT",
		KeyRunID:  "TRAVIS_BUILD_ID",
		KeyJob:    "TRAVIS_JOB_NAME",
		KeyRef:    "TRAVIS_BRANCH",
	},
	ProviderCircleCI: {
		KeyCommit:   "CIRCLE_SHA1",
		KeyRunID:    "CIRCLE_BUILD_NUM",
		KeyJob:      "CIRCLE_JOB",
		KeyWorkflow: "CIRCLE_WORKFLOW_ID",
		KeyRef:      "CIRCLE_BRANCH",
	},
}

// IsCI returns true if the current environment is a CI environment.
// It checks for common CI environment variables across different CI providers.
func IsCI(getenv Getenv) bool {
	return DetectProvider(getenv) != ProviderNone
}

// DetectProvider names the CI provider running the process, ProviderGeneric
// when only CI is set, or ProviderNone outside CI.
func DetectProvider(getenv Getenv) string {
	switch {
	case getenv(EnvGitHubActions) == "true":
		return ProviderGitHubActions
	case getenv(EnvGitLabCI) == "true":
		return ProviderGitLabCI
	case getenv(EnvJenkinsURL) != "":
		return ProviderJenkins
	case getenv(EnvTravisCI) == "true":
		return ProviderTravisCI
	case getenv(EnvCircleCI) == "true":
		return ProviderCircleCI
	case getenv(EnvCI) != "":
		return ProviderGeneric
	default:
		return ProviderNone
	}
}

// Metadata collects identifying information about the CI run. Outside CI it
// returns an empty map; unset variables are omitted.
func Metadata(getenv Getenv) map[string]string {
	metadata := make(map[string]string)

	provider := DetectProvider(getenv)
	if provider == ProviderNone {
		return metadata
	}
	metadata[KeyProvider] = provider

	for key, envName := range providerVars[provider] {
		if v := getenv(envName); v != "" {
			metadata[key] = v
		}
	}
	return metadata
}
