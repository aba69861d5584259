package runtime

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/codex-ml/workbench-mcp-server/internal/envelope"
	"github.com/codex-ml/workbench-mcp-server/internal/workbench"
)

// toolSpec declares one tool: its wire-level schema, which arguments need
// decoding from JSON strings or comma lists, and the client method behind
// it.
type toolSpec struct {
	name        string
	description string
	schema      map[string]any
	annotations *mcp.ToolAnnotations
	jsonArgs    []string
	listArgs    []string
	call        func(context.Context, *workbench.Client, workbench.Params) envelope.Result
}

func objectSchema(required []string, props map[string]any) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringProp(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func intProp(desc string) map[string]any {
	return map[string]any{"type": "integer", "description": desc}
}

func boolProp(desc string) map[string]any {
	return map[string]any{"type": "boolean", "description": desc}
}

func readOnly() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{ReadOnlyHint: true, IdempotentHint: true}
}

func destructive() *mcp.ToolAnnotations {
	yes := true
	return &mcp.ToolAnnotations{DestructiveHint: &yes, IdempotentHint: true}
}

func idempotent() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{IdempotentHint: true}
}

// Shared property fragments.
var (
	projectIDProp = stringProp("Project ID (uses the configured default when omitted)")
	envVarsProp   = stringProp("Environment variables as a JSON-encoded object")
	runtimeProp   = stringProp("ML runtime identifier")
)

func toolSpecs() []toolSpec {
	return []toolSpec{
		// Projects
		{
			name:        "list_projects",
			description: "List all projects visible to the configured API key",
			schema:      objectSchema(nil, map[string]any{}),
			annotations: readOnly(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.ListProjects(ctx, p)
			},
		},
		{
			name:        "get_project_id",
			description: "Resolve a project name to its ID; pass * to list every project",
			schema: objectSchema([]string{"project_name"}, map[string]any{
				"project_name": stringProp("Project name to resolve, or * for all projects"),
			}),
			annotations: readOnly(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.GetProjectID(ctx, p)
			},
		},
		{
			name:        "batch_list_projects",
			description: "Return the projects matching a list of project IDs",
			schema: objectSchema([]string{"project_ids"}, map[string]any{
				"project_ids": stringProp("Comma-separated list of project IDs"),
			}),
			annotations: readOnly(),
			listArgs:    []string{"project_ids"},
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.BatchListProjects(ctx, p)
			},
		},
		{
			name:        "update_project",
			description: "Update project fields such as name, summary, or visibility",
			schema: objectSchema(nil, map[string]any{
				"project_id":       projectIDProp,
				"name":             stringProp("New project name"),
				"summary":          stringProp("New project summary"),
				"template":         stringProp("New project template"),
				"public":           boolProp("Whether the project is public"),
				"disable_git_repo": boolProp("Whether the Git repository is disabled"),
			}),
			annotations: idempotent(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.UpdateProject(ctx, p)
			},
		},

		// Jobs
		{
			name:        "create_job",
			description: "Create a batch job in the project",
			schema: objectSchema([]string{"name", "script"}, map[string]any{
				"project_id":         projectIDProp,
				"name":               stringProp("Job name"),
				"script":             stringProp("Script path relative to the project root"),
				"kernel":             stringProp("Kernel type (default python3)"),
				"cpu":                intProp("CPU cores (default 1)"),
				"memory":             intProp("Memory in GB (default 1)"),
				"nvidia_gpu":         intProp("Number of GPUs (default 0)"),
				"runtime_identifier": runtimeProp,
			}),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.CreateJob(ctx, p)
			},
		},
		{
			name:        "list_jobs",
			description: "List the jobs in the project",
			schema: objectSchema(nil, map[string]any{
				"project_id": projectIDProp,
			}),
			annotations: readOnly(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.ListJobs(ctx, p)
			},
		},
		{
			name:        "get_job",
			description: "Get one job by ID",
			schema: objectSchema([]string{"job_id"}, map[string]any{
				"project_id": projectIDProp,
				"job_id":     stringProp("Job ID"),
			}),
			annotations: readOnly(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.GetJob(ctx, p)
			},
		},
		{
			name:        "update_job",
			description: "Update fields of an existing job",
			schema: objectSchema([]string{"job_id"}, map[string]any{
				"project_id":            projectIDProp,
				"job_id":                stringProp("Job ID"),
				"name":                  stringProp("New job name"),
				"script":                stringProp("New script path"),
				"kernel":                stringProp("New kernel type"),
				"cpu":                   intProp("New CPU cores"),
				"memory":                intProp("New memory in GB"),
				"nvidia_gpu":            intProp("New GPU count"),
				"runtime_identifier":    runtimeProp,
				"environment_variables": envVarsProp,
			}),
			annotations: idempotent(),
			jsonArgs:    []string{"environment_variables"},
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.UpdateJob(ctx, p)
			},
		},
		{
			name:        "delete_job",
			description: "Delete one job",
			schema: objectSchema([]string{"job_id"}, map[string]any{
				"project_id": projectIDProp,
				"job_id":     stringProp("Job ID"),
			}),
			annotations: destructive(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.DeleteJob(ctx, p)
			},
		},
		{
			name:        "delete_all_jobs",
			description: "Delete every job in the project, reporting per-job outcomes",
			schema: objectSchema(nil, map[string]any{
				"project_id": projectIDProp,
			}),
			annotations: destructive(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.DeleteAllJobs(ctx, p)
			},
		},

		// Job runs
		{
			name:        "create_job_run",
			description: "Launch a run for an existing job",
			schema: objectSchema([]string{"job_id"}, map[string]any{
				"project_id":            projectIDProp,
				"job_id":                stringProp("Job ID"),
				"runtime_identifier":    runtimeProp,
				"environment_variables": envVarsProp,
				"override_config":       stringProp("Run override configuration as a JSON-encoded object"),
			}),
			jsonArgs: []string{"environment_variables", "override_config"},
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.CreateJobRun(ctx, p)
			},
		},
		{
			name:        "list_job_runs",
			description: "List the runs of one job",
			schema: objectSchema([]string{"job_id"}, map[string]any{
				"project_id": projectIDProp,
				"job_id":     stringProp("Job ID"),
			}),
			annotations: readOnly(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.ListJobRuns(ctx, p)
			},
		},
		{
			name:        "get_job_run",
			description: "Get one run of one job",
			schema: objectSchema([]string{"job_id", "run_id"}, map[string]any{
				"project_id": projectIDProp,
				"job_id":     stringProp("Job ID"),
				"run_id":     stringProp("Job run ID"),
			}),
			annotations: readOnly(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.GetJobRun(ctx, p)
			},
		},
		{
			name:        "stop_job_run",
			description: "Stop a running job run",
			schema: objectSchema([]string{"job_id", "run_id"}, map[string]any{
				"project_id": projectIDProp,
				"job_id":     stringProp("Job ID"),
				"run_id":     stringProp("Job run ID"),
			}),
			annotations: idempotent(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.StopJobRun(ctx, p)
			},
		},

		// Experiments
		{
			name:        "create_experiment",
			description: "Create a tracking experiment in the project",
			schema: objectSchema([]string{"name"}, map[string]any{
				"project_id":  projectIDProp,
				"name":        stringProp("Experiment name"),
				"description": stringProp("Experiment description"),
			}),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.CreateExperiment(ctx, p)
			},
		},
		{
			name:        "list_experiments",
			description: "List the experiments in the project",
			schema: objectSchema(nil, map[string]any{
				"project_id": projectIDProp,
			}),
			annotations: readOnly(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.ListExperiments(ctx, p)
			},
		},
		{
			name:        "get_experiment",
			description: "Get one experiment by ID",
			schema: objectSchema([]string{"experiment_id"}, map[string]any{
				"project_id":    projectIDProp,
				"experiment_id": stringProp("Experiment ID"),
			}),
			annotations: readOnly(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.GetExperiment(ctx, p)
			},
		},
		{
			name:        "update_experiment",
			description: "Update experiment name or description",
			schema: objectSchema([]string{"experiment_id"}, map[string]any{
				"project_id":    projectIDProp,
				"experiment_id": stringProp("Experiment ID"),
				"name":          stringProp("New experiment name"),
				"description":   stringProp("New experiment description"),
			}),
			annotations: idempotent(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.UpdateExperiment(ctx, p)
			},
		},
		{
			name:        "delete_experiment",
			description: "Delete one experiment",
			schema: objectSchema([]string{"experiment_id"}, map[string]any{
				"project_id":    projectIDProp,
				"experiment_id": stringProp("Experiment ID"),
			}),
			annotations: destructive(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.DeleteExperiment(ctx, p)
			},
		},

		// Experiment runs
		{
			name:        "create_experiment_run",
			description: "Create a run under an experiment",
			schema: objectSchema([]string{"experiment_id"}, map[string]any{
				"project_id":    projectIDProp,
				"experiment_id": stringProp("Experiment ID"),
				"name":          stringProp("Run name"),
				"description":   stringProp("Run description"),
				"metrics":       stringProp("Metrics as a JSON-encoded object"),
				"parameters":    stringProp("Parameters as a JSON-encoded object"),
				"tags":          stringProp("Comma-separated list of tags"),
			}),
			jsonArgs: []string{"metrics", "parameters"},
			listArgs: []string{"tags"},
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.CreateExperimentRun(ctx, p)
			},
		},
		{
			name:        "get_experiment_run",
			description: "Get one experiment run",
			schema: objectSchema([]string{"experiment_id", "run_id"}, map[string]any{
				"project_id":    projectIDProp,
				"experiment_id": stringProp("Experiment ID"),
				"run_id":        stringProp("Experiment run ID"),
			}),
			annotations: readOnly(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.GetExperimentRun(ctx, p)
			},
		},
		{
			name:        "delete_experiment_run",
			description: "Delete one experiment run",
			schema: objectSchema([]string{"experiment_id", "run_id"}, map[string]any{
				"project_id":    projectIDProp,
				"experiment_id": stringProp("Experiment ID"),
				"run_id":        stringProp("Experiment run ID"),
			}),
			annotations: destructive(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.DeleteExperimentRun(ctx, p)
			},
		},
		{
			name:        "delete_experiment_run_batch",
			description: "Delete multiple experiment runs in one call",
			schema: objectSchema([]string{"experiment_id", "run_ids"}, map[string]any{
				"project_id":    projectIDProp,
				"experiment_id": stringProp("Experiment ID"),
				"run_ids":       stringProp("Comma-separated list of run IDs"),
			}),
			annotations: destructive(),
			listArgs:    []string{"run_ids"},
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.DeleteExperimentRunBatch(ctx, p)
			},
		},
		{
			name:        "log_experiment_run_batch",
			description: "Log metrics, parameters, and tags for multiple experiment runs",
			schema: objectSchema([]string{"experiment_id", "run_updates"}, map[string]any{
				"project_id":    projectIDProp,
				"experiment_id": stringProp("Experiment ID"),
				"run_updates":   stringProp("Run update objects as a JSON-encoded array"),
			}),
			jsonArgs: []string{"run_updates"},
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.LogExperimentRunBatch(ctx, p)
			},
		},

		// Models
		{
			name:        "list_models",
			description: "List the models in the project",
			schema: objectSchema(nil, map[string]any{
				"project_id": projectIDProp,
			}),
			annotations: readOnly(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.ListModels(ctx, p)
			},
		},
		{
			name:        "get_model",
			description: "Get one model by ID",
			schema: objectSchema([]string{"model_id"}, map[string]any{
				"project_id": projectIDProp,
				"model_id":   stringProp("Model ID"),
			}),
			annotations: readOnly(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.GetModel(ctx, p)
			},
		},
		{
			name:        "delete_model",
			description: "Delete one model",
			schema: objectSchema([]string{"model_id"}, map[string]any{
				"project_id": projectIDProp,
				"model_id":   stringProp("Model ID"),
			}),
			annotations: destructive(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.DeleteModel(ctx, p)
			},
		},
		{
			name:        "list_model_builds",
			description: "List builds for one model, or every build in the project",
			schema: objectSchema(nil, map[string]any{
				"project_id": projectIDProp,
				"model_id":   stringProp("Model ID (lists all project builds when omitted)"),
			}),
			annotations: readOnly(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.ListModelBuilds(ctx, p)
			},
		},
		{
			name:        "get_model_build",
			description: "Get one build of one model",
			schema: objectSchema([]string{"model_id", "build_id"}, map[string]any{
				"project_id": projectIDProp,
				"model_id":   stringProp("Model ID"),
				"build_id":   stringProp("Model build ID"),
			}),
			annotations: readOnly(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.GetModelBuild(ctx, p)
			},
		},
		{
			name:        "create_model_build",
			description: "Create a build for a model; file_path may name a local file whose contents are sent inline",
			schema: objectSchema([]string{"model_id", "file_path", "function_name"}, map[string]any{
				"project_id":              projectIDProp,
				"model_id":                stringProp("Model ID"),
				"file_path":               stringProp("Path to the model script, or inline code when no such local file exists"),
				"function_name":           stringProp("Name of the function containing the model code"),
				"kernel":                  stringProp("Kernel type"),
				"runtime_identifier":      runtimeProp,
				"replica_size":            stringProp("Pod size for the build"),
				"cpu":                     intProp("CPU cores"),
				"memory":                  intProp("Memory in GB"),
				"nvidia_gpu":              intProp("Number of GPUs"),
				"use_custom_docker_image": boolProp("Whether to use a custom Docker image"),
				"custom_docker_image":     stringProp("Custom Docker image"),
				"environment_variables":   envVarsProp,
			}),
			jsonArgs: []string{"environment_variables"},
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.CreateModelBuild(ctx, p)
			},
		},
		{
			name:        "list_model_deployments",
			description: "List deployments for one model, or every deployment in the project",
			schema: objectSchema(nil, map[string]any{
				"project_id": projectIDProp,
				"model_id":   stringProp("Model ID (lists all project deployments when omitted)"),
			}),
			annotations: readOnly(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.ListModelDeployments(ctx, p)
			},
		},
		{
			name:        "get_model_deployment",
			description: "Get one deployment of one model",
			schema: objectSchema([]string{"model_id", "deployment_id"}, map[string]any{
				"project_id":    projectIDProp,
				"model_id":      stringProp("Model ID"),
				"deployment_id": stringProp("Model deployment ID"),
			}),
			annotations: readOnly(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.GetModelDeployment(ctx, p)
			},
		},
		{
			name:        "create_model_deployment",
			description: "Deploy a model build",
			schema: objectSchema([]string{"model_id", "build_id", "name"}, map[string]any{
				"project_id":            projectIDProp,
				"model_id":              stringProp("Model ID"),
				"build_id":              stringProp("Model build ID to deploy"),
				"name":                  stringProp("Deployment name"),
				"cpu":                   intProp("CPU cores"),
				"memory":                intProp("Memory in GB"),
				"replica_count":         intProp("Number of replicas"),
				"min_replica_count":     intProp("Minimum number of replicas"),
				"max_replica_count":     intProp("Maximum number of replicas"),
				"nvidia_gpu":            intProp("Number of GPUs"),
				"environment_variables": envVarsProp,
				"enable_auth":           boolProp("Whether to enable authentication"),
				"target_node_selector":  stringProp("Target node selector"),
			}),
			jsonArgs: []string{"environment_variables"},
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.CreateModelDeployment(ctx, p)
			},
		},
		{
			name:        "stop_model_deployment",
			description: "Stop a running model deployment",
			schema: objectSchema([]string{"model_id", "deployment_id"}, map[string]any{
				"project_id":    projectIDProp,
				"model_id":      stringProp("Model ID"),
				"deployment_id": stringProp("Model deployment ID"),
			}),
			annotations: idempotent(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.StopModelDeployment(ctx, p)
			},
		},

		// Applications
		{
			name:        "create_application",
			description: "Create a long-running application in the project",
			schema: objectSchema([]string{"name", "script"}, map[string]any{
				"project_id":            projectIDProp,
				"name":                  stringProp("Application name"),
				"script":                stringProp("Script to run in the application"),
				"subdomain":             stringProp("Application subdomain"),
				"description":           stringProp("Application description"),
				"cpu":                   intProp("CPU cores (default 1)"),
				"memory":                intProp("Memory in GB (default 1)"),
				"nvidia_gpu":            intProp("Number of GPUs (default 0)"),
				"runtime_identifier":    runtimeProp,
				"environment_variables": envVarsProp,
				"bypass_authentication": boolProp("Whether to bypass authentication"),
			}),
			jsonArgs: []string{"environment_variables"},
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.CreateApplication(ctx, p)
			},
		},
		{
			name:        "list_applications",
			description: "List the applications in the project",
			schema: objectSchema(nil, map[string]any{
				"project_id": projectIDProp,
			}),
			annotations: readOnly(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.ListApplications(ctx, p)
			},
		},
		{
			name:        "get_application",
			description: "Get one application by ID",
			schema: objectSchema([]string{"application_id"}, map[string]any{
				"project_id":     projectIDProp,
				"application_id": stringProp("Application ID"),
			}),
			annotations: readOnly(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.GetApplication(ctx, p)
			},
		},
		{
			name:        "update_application",
			description: "Update fields of an existing application",
			schema: objectSchema([]string{"application_id"}, map[string]any{
				"project_id":            projectIDProp,
				"application_id":        stringProp("Application ID"),
				"name":                  stringProp("New application name"),
				"description":           stringProp("New application description"),
				"cpu":                   intProp("New CPU cores"),
				"memory":                intProp("New memory in GB"),
				"nvidia_gpu":            intProp("New GPU count"),
				"environment_variables": envVarsProp,
				"runtime_identifier":    runtimeProp,
			}),
			annotations: idempotent(),
			jsonArgs:    []string{"environment_variables"},
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.UpdateApplication(ctx, p)
			},
		},
		{
			name:        "delete_application",
			description: "Delete one application",
			schema: objectSchema([]string{"application_id"}, map[string]any{
				"project_id":     projectIDProp,
				"application_id": stringProp("Application ID"),
			}),
			annotations: destructive(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.DeleteApplication(ctx, p)
			},
		},
		{
			name:        "restart_application",
			description: "Restart a running application",
			schema: objectSchema([]string{"application_id"}, map[string]any{
				"project_id":     projectIDProp,
				"application_id": stringProp("Application ID"),
			}),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.RestartApplication(ctx, p)
			},
		},
		{
			name:        "stop_application",
			description: "Stop a running application",
			schema: objectSchema([]string{"application_id"}, map[string]any{
				"project_id":     projectIDProp,
				"application_id": stringProp("Application ID"),
			}),
			annotations: idempotent(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.StopApplication(ctx, p)
			},
		},

		// Files
		{
			name:        "list_project_files",
			description: "List files under a path in the project",
			schema: objectSchema(nil, map[string]any{
				"project_id": projectIDProp,
				"path":       stringProp("Path relative to the project root (root when omitted)"),
			}),
			annotations: readOnly(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.ListProjectFiles(ctx, p)
			},
		},
		{
			name:        "delete_project_file",
			description: "Delete one file from the project",
			schema: objectSchema([]string{"file_path"}, map[string]any{
				"project_id": projectIDProp,
				"file_path":  stringProp("File path relative to the project root"),
			}),
			annotations: destructive(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.DeleteProjectFile(ctx, p)
			},
		},
		{
			name:        "update_project_file_metadata",
			description: "Update description or visibility of a project file",
			schema: objectSchema([]string{"file_path"}, map[string]any{
				"project_id":  projectIDProp,
				"file_path":   stringProp("File path relative to the project root"),
				"description": stringProp("New file description"),
				"hidden":      boolProp("Whether the file is hidden"),
			}),
			annotations: idempotent(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.UpdateProjectFileMetadata(ctx, p)
			},
		},
		{
			name:        "upload_file",
			description: "Upload one local file into the project",
			schema: objectSchema([]string{"file_path"}, map[string]any{
				"project_id":  projectIDProp,
				"file_path":   stringProp("Local path of the file to upload"),
				"target_name": stringProp("Name to save the file as (defaults to the original name)"),
				"target_dir":  stringProp("Directory to save the file in (defaults to the project root)"),
			}),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.UploadFile(ctx, p)
			},
		},
		{
			name:        "upload_folder",
			description: "Upload a local directory tree into the project, skipping ignored folders",
			schema: objectSchema([]string{"folder_path"}, map[string]any{
				"project_id":     projectIDProp,
				"folder_path":    stringProp("Local path of the directory to upload"),
				"ignore_folders": stringProp("Comma-separated directory names to skip (defaults to common VCS and build directories)"),
			}),
			listArgs: []string{"ignore_folders"},
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.UploadFolder(ctx, p)
			},
		},

		// Runtimes
		{
			name:        "get_runtimes",
			description: "List the ML runtimes available on the platform",
			schema:      objectSchema(nil, map[string]any{}),
			annotations: readOnly(),
			call: func(ctx context.Context, c *workbench.Client, p workbench.Params) envelope.Result {
				return c.GetRuntimes(ctx, p)
			},
		},
	}
}
