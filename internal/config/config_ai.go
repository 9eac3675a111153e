package config

// applyOperationDefaults applies global defaults to operation-specific configuration
func (c *Config) applyOperationDefaults(opCfg *OperationAIConfig) {
	if opCfg.Provider == "" {
		opCfg.Provider = c.AI.Provider
	}
	if opCfg.Model == "" {
		opCfg.Model = c.AI.Model
	}
	if opCfg.Timeout == nil {
		opCfg.Timeout = &c.AI.Timeout
	}
	if opCfg.APIKey == "" {
		opCfg.APIKey = c.AI.APIKey
	}
	if opCfg.MaxRetries == nil {
		opCfg.MaxRetries = &c.AI.MaxRetries
	}
	if opCfg.Temperature == nil {
		opCfg.Temperature = &c.AI.Temperature
	}
	// UseSystemPrompts: apply global default only if not explicitly set
	if opCfg.UseSystemPrompts == nil {
		opCfg.UseSystemPrompts = &c.AI.UseSystemPrompts
	}
}

// GetAdviseConfig returns the AI configuration for advice generation with fallback to global config
func (c *Config) GetAdviseConfig() OperationAIConfig {
	config := c.AI.Advise

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply advise-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.Advise == "" {
		config.CustomPrompts.SystemPrompts.Advise = c.AI.CustomPrompts.SystemPrompts.Advise
	}
	if config.CustomPrompts.UserPrompts.Advise == "" {
		config.CustomPrompts.UserPrompts.Advise = c.AI.CustomPrompts.UserPrompts.Advise
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.AdviseFile == "" {
		config.CustomPrompts.SystemPrompts.AdviseFile = c.AI.CustomPrompts.SystemPrompts.AdviseFile
	}
	if config.CustomPrompts.UserPrompts.AdviseFile == "" {
		config.CustomPrompts.UserPrompts.AdviseFile = c.AI.CustomPrompts.UserPrompts.AdviseFile
	}

	return config
}

// GetSuggestConfig returns the AI configuration for role skill suggestions with fallback to global config
func (c *Config) GetSuggestConfig() OperationAIConfig {
	config := c.AI.Suggest

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply suggest-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.SuggestSkills == "" {
		config.CustomPrompts.SystemPrompts.SuggestSkills = c.AI.CustomPrompts.SystemPrompts.SuggestSkills
	}
	if config.CustomPrompts.UserPrompts.SuggestSkills == "" {
		config.CustomPrompts.UserPrompts.SuggestSkills = c.AI.CustomPrompts.UserPrompts.SuggestSkills
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.SuggestSkillsFile == "" {
		config.CustomPrompts.SystemPrompts.SuggestSkillsFile = c.AI.CustomPrompts.SystemPrompts.SuggestSkillsFile
	}
	if config.CustomPrompts.UserPrompts.SuggestSkillsFile == "" {
		config.CustomPrompts.UserPrompts.SuggestSkillsFile = c.AI.CustomPrompts.UserPrompts.SuggestSkillsFile
	}

	return config
}

// GetEmbedConfig returns the AI configuration for embedding operations with fallback to global config
func (c *Config) GetEmbedConfig() OperationAIConfig {
	config := c.AI.Embed

	// Embedding uses a dedicated model family, so the global chat model is
	// not a sensible fallback here.
	if config.Model == "" {
		config.Model = "text-embedding-004"
	}
	c.applyOperationDefaults(&config)

	return config
}

// GetLoadedAdvisePrompts returns a copy of the loaded prompts for the advise operation
func (c *Config) GetLoadedAdvisePrompts() OperationLoadedPrompts {
	return loadedPrompts.Advise
}

// GetLoadedSuggestPrompts returns a copy of the loaded prompts for the suggest operation
func (c *Config) GetLoadedSuggestPrompts() OperationLoadedPrompts {
	return loadedPrompts.Suggest
}

// GetLoadedGlobalPrompts returns a copy of the loaded global prompts
func (c *Config) GetLoadedGlobalPrompts() LoadedPrompts {
	return loadedPrompts.Global
}
