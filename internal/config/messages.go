package config

type MessagesConfig struct {
	Auth struct {
		Success struct {
			Registration string `yaml:"registration"`
			Login        string `yaml:"login"`
		} `yaml:"success"`
		Error struct {
			MissingCredentials string `yaml:"missing_credentials"`
			InvalidCredentials string `yaml:"invalid_credentials"`
			EmailExists        string `yaml:"email_exists"`
			TokenRequired      string `yaml:"token_required"`
			InvalidToken       string `yaml:"invalid_token"`
			AdminRequired      string `yaml:"admin_required"`
			AdminInactive      string `yaml:"admin_inactive"`
		} `yaml:"error"`
	} `yaml:"auth"`
	Post struct {
		Success struct {
			Created  string `yaml:"created"`
			Updated  string `yaml:"updated"`
			Deleted  string `yaml:"deleted"`
			Restored string `yaml:"restored"`
		} `yaml:"success"`
		Error struct {
			NotFound             string `yaml:"not_found"`
			InvalidID            string `yaml:"invalid_id"`
			TitleContentRequired string `yaml:"title_content_required"`
			NotAuthor            string `yaml:"not_author"`
			NotPublished         string `yaml:"not_published"`
			InvalidCategory      string `yaml:"invalid_category"`
			AlreadyDeleted       string `yaml:"already_deleted"`
			NotDeleted           string `yaml:"not_deleted"`
			InvalidReason        string `yaml:"invalid_reason"`
		} `yaml:"error"`
	} `yaml:"post"`
	Admin struct {
		Success struct {
			StatusUpdated string `yaml:"status_updated"`
		} `yaml:"success"`
		Error struct {
			UserNotFound  string `yaml:"user_not_found"`
			InvalidUserID string `yaml:"invalid_user_id"`
			InvalidStatus string `yaml:"invalid_status"`
			OwnStatus     string `yaml:"own_status"`
			AdminStatus   string `yaml:"admin_status"`
		} `yaml:"error"`
	} `yaml:"admin"`
	Upload struct {
		Error struct {
			TooLarge        string `yaml:"too_large"`
			UnsupportedType string `yaml:"unsupported_type"`
		} `yaml:"error"`
	} `yaml:"upload"`
	Validation struct {
		Error struct {
			InvalidRequest string `yaml:"invalid_request"`
		} `yaml:"error"`
	} `yaml:"validation"`
	Server struct {
		Error struct {
			Internal string `yaml:"internal"`
		} `yaml:"error"`
	} `yaml:"server"`
}

func defaultMessages() MessagesConfig {
	var m MessagesConfig

	m.Auth.Success.Registration = "User registered successfully"
	m.Auth.Success.Login = "Login successful"
	m.Auth.Error.MissingCredentials = "Email and password required"
	m.Auth.Error.InvalidCredentials = "Invalid credentials"
	m.Auth.Error.EmailExists = "User already exists"
	m.Auth.Error.TokenRequired = "Not authorized, no token"
	m.Auth.Error.InvalidToken = "Not authorized, token failed"
	m.Auth.Error.AdminRequired = "Access denied. Admin privileges required."
	m.Auth.Error.AdminInactive = "Admin account is not active"

	m.Post.Success.Created = "Post created successfully"
	m.Post.Success.Updated = "Post updated successfully"
	m.Post.Success.Deleted = "Post deleted successfully"
	m.Post.Success.Restored = "Post restored successfully"
	m.Post.Error.NotFound = "Post not found"
	m.Post.Error.InvalidID = "Invalid post ID"
	m.Post.Error.TitleContentRequired = "Title and content are required"
	m.Post.Error.NotAuthor = "You can only modify your own posts"
	m.Post.Error.NotPublished = "This post is not published"
	m.Post.Error.InvalidCategory = "Invalid category. Must be one of: %s"
	m.Post.Error.AlreadyDeleted = "Post is already deleted"
	m.Post.Error.NotDeleted = "Post is not deleted"
	m.Post.Error.InvalidReason = "Invalid reason. Must be one of: %s"

	m.Admin.Success.StatusUpdated = "User %s successfully"
	m.Admin.Error.UserNotFound = "User not found"
	m.Admin.Error.InvalidUserID = "Invalid user ID"
	m.Admin.Error.InvalidStatus = "Invalid status. Must be one of: %s"
	m.Admin.Error.OwnStatus = "You cannot change your own status"
	m.Admin.Error.AdminStatus = "You cannot change the status of another admin"

	m.Upload.Error.TooLarge = "Uploaded file is too large"
	m.Upload.Error.UnsupportedType = "Unsupported image type"

	m.Validation.Error.InvalidRequest = "Invalid request data"
	m.Server.Error.Internal = "Server error"

	return m
}
