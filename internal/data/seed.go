package data

import "context"

// Seed installs the starter posts when the collection is empty, so a fresh
// install renders a populated listing. It returns the number of posts
// written; a non-empty collection is left untouched.
func (s *PostStore) Seed(ctx context.Context) (int, error) {
	posts, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	if len(posts) > 0 {
		return 0, nil
	}
	samples := samplePosts()
	if err := s.save(ctx, samples); err != nil {
		return 0, err
	}
	return len(samples), nil
}

// samplePosts is the starter content. The ids are fixed small integers, not
// clock-derived: seeding predates any user-created post and must be
// reproducible.
func samplePosts() []Post {
	return []Post{
		{
			ID:      1,
			Title:   "Getting Started with JavaScript ES6",
			Excerpt: "Learn the modern features of JavaScript ES6 including arrow functions, destructuring, and modules.",
			Content: "<h2>Introduction to ES6</h2>\n" +
				"<p>JavaScript ES6 (ECMAScript 2015) introduced many powerful features that make JavaScript development more efficient and enjoyable.</p>\n" +
				"<h3>Arrow Functions</h3>\n" +
				"<p>Arrow functions provide a more concise way to write functions:</p>\n" +
				"<pre><code>const add = (a, b) =&gt; a + b;</code></pre>\n" +
				"<h3>Template Literals</h3>\n" +
				"<p>Template literals make string interpolation easier.</p>",
			Category: "programming",
			Status:   StatusPublished,
			Date:     "2024-01-15T00:00:00.000Z",
			Gallery:  []string{},
		},
		{
			ID:      2,
			Title:   "The Future of Artificial Intelligence",
			Excerpt: "Exploring the latest developments in AI and machine learning technologies.",
			Content: "<h2>AI Revolution</h2>\n" +
				"<p>Artificial Intelligence is transforming every aspect of our lives, from healthcare to transportation.</p>\n" +
				"<h3>Machine Learning</h3>\n" +
				"<p>Machine learning algorithms are becoming more sophisticated and accessible.</p>\n" +
				"<h3>Natural Language Processing</h3>\n" +
				"<p>NLP has made significant strides with models like GPT and BERT.</p>",
			Category: "ai",
			Status:   StatusPublished,
			Date:     "2024-01-20T00:00:00.000Z",
			Gallery:  []string{},
		},
		{
			ID:      3,
			Title:   "Building Responsive Web Applications",
			Excerpt: "Best practices for creating web applications that work seamlessly across all devices.",
			Content: "<h2>Responsive Design Principles</h2>\n" +
				"<p>Creating responsive web applications is essential in today's multi-device world.</p>\n" +
				"<h3>Mobile-First Approach</h3>\n" +
				"<p>Start designing for mobile devices and progressively enhance for larger screens.</p>\n" +
				"<h3>Flexible Grid Systems</h3>\n" +
				"<p>Use CSS Grid and Flexbox for creating flexible layouts.</p>",
			Category: "web-development",
			Status:   StatusPublished,
			Date:     "2024-01-25T00:00:00.000Z",
			Gallery:  []string{},
		},
		{
			ID:      4,
			Title:   "Mobile App Development Trends 2024",
			Excerpt: "Discover the latest trends and technologies shaping mobile app development.",
			Content: "<h2>Mobile Development Landscape</h2>\n" +
				"<p>The mobile app development industry continues to evolve with new frameworks and technologies.</p>\n" +
				"<h3>Cross-Platform Development</h3>\n" +
				"<p>React Native and Flutter are leading the cross-platform development space.</p>\n" +
				"<h3>Progressive Web Apps</h3>\n" +
				"<p>PWAs offer native-like experiences through web technologies.</p>",
			Category: "mobile",
			Status:   StatusPublished,
			Date:     "2024-02-01T00:00:00.000Z",
			Gallery:  []string{},
		},
		{
			ID:      5,
			Title:   "Cloud Computing Fundamentals",
			Excerpt: "Understanding the basics of cloud computing and its impact on modern technology.",
			Content: "<h2>Introduction to Cloud Computing</h2>\n" +
				"<p>Cloud computing has revolutionized how we store, process, and access data.</p>\n" +
				"<h3>Service Models</h3>\n" +
				"<p>Learn about IaaS, PaaS, and SaaS service models.</p>\n" +
				"<h3>Deployment Models</h3>\n" +
				"<p>Understand public, private, and hybrid cloud deployments.</p>",
			Category: "technology",
			Status:   StatusPublished,
			Date:     "2024-02-05T00:00:00.000Z",
			Gallery:  []string{},
		},
		{
			ID:      6,
			Title:   "Cybersecurity Best Practices",
			Excerpt: "Essential security measures every developer and organization should implement.",
			Content: "<h2>Cybersecurity Essentials</h2>\n" +
				"<p>In today's digital landscape, cybersecurity is more important than ever.</p>\n" +
				"<h3>Password Security</h3>\n" +
				"<p>Implement strong password policies and multi-factor authentication.</p>\n" +
				"<h3>Regular Updates</h3>\n" +
				"<p>Keep systems and software updated to patch security vulnerabilities.</p>",
			Category: "technology",
			Status:   StatusPublished,
			Date:     "2024-02-10T00:00:00.000Z",
			Gallery:  []string{},
		},
		{
			ID:      7,
			Title:   "Introduction to DevOps",
			Excerpt: "Learn how DevOps practices can improve software development and deployment.",
			Content: "<h2>DevOps Culture</h2>\n" +
				"<p>DevOps bridges the gap between development and operations teams.</p>\n" +
				"<h3>Continuous Integration</h3>\n" +
				"<p>Automate code integration and testing processes.</p>\n" +
				"<h3>Infrastructure as Code</h3>\n" +
				"<p>Manage infrastructure through code and version control.</p>",
			Category: "programming",
			Status:   StatusDraft,
			Date:     "2024-02-15T00:00:00.000Z",
			Gallery:  []string{},
			Type:     PostTypeArticle,
		},
		{
			ID:      8,
			Title:   "Building Modern Web Applications - Video Tutorial",
			Excerpt: "Watch this comprehensive video guide on creating responsive web applications with modern frameworks.",
			Content: "<h2>Modern Web Development</h2>\n" +
				"<p>This video tutorial covers the essential concepts of building modern web applications.</p>\n" +
				"<h3>Topics Covered</h3>\n" +
				"<ul><li>React.js fundamentals</li><li>State management</li><li>API integration</li><li>Responsive design</li></ul>\n" +
				"<p>Follow along with the practical examples and build your own web application.</p>",
			Category: "web-development",
			Status:   StatusPublished,
			Date:     "2024-02-20T00:00:00.000Z",
			Gallery:  []string{},
			Type:     PostTypeVideo,
			VideoURL: "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
	}
}
