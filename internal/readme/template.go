package readme

// skeleton is the fixed document layout. Placeholders are substituted by the
// assembler; section order never changes.
const skeleton = `<div align="center">

# {{emoji}} {{repo_name}}

{{description}}

[![GitHub stars](https://img.shields.io/github/stars/{{github_user}}/{{repo_name}})](https://github.com/{{github_user}}/{{repo_name}}/stargazers)
[![GitHub forks](https://img.shields.io/github/forks/{{github_user}}/{{repo_name}})](https://github.com/{{github_user}}/{{repo_name}}/network)
[![GitHub issues](https://img.shields.io/github/issues/{{github_user}}/{{repo_name}})](https://github.com/{{github_user}}/{{repo_name}}/issues)
[![GitHub license](https://img.shields.io/github/license/{{github_user}}/{{repo_name}})](https://github.com/{{github_user}}/{{repo_name}}/blob/main/LICENSE)

{{project_preview}}

</div>

## 📋 Table of Contents

- [✨ Features](#-features)
- [🛠️ Technologies](#️-technologies)
- [🚀 Quick Start](#-quick-start)
- [📁 Project Structure](#-project-structure)
- [⚙️ Installation](#️-installation)
- [🎯 Usage](#-usage)
- [🔧 Configuration](#-configuration)
- [📖 API Documentation](#-api-documentation)
- [🧪 Testing](#-testing)
- [🚢 Deployment](#-deployment)
- [🤝 Contributing](#-contributing)
- [📝 License](#-license)
- [💬 Support](#-support)

## ✨ Features

{{features_list}}

## 🛠️ Technologies

{{technologies_section}}

## 🚀 Quick Start

{{quick_start_section}}

## 📁 Project Structure

` + "```" + `
{{file_structure}}
` + "```" + `

{{structure_explanation}}

## ⚙️ Installation

{{installation_instructions}}

## 🎯 Usage

{{usage_section}}

## 🔧 Configuration

{{configuration_section}}

## 📖 API Documentation

{{api_documentation}}

## 🧪 Testing

{{testing_section}}

## 🚢 Deployment

{{deployment_section}}

## 🤝 Contributing

We welcome contributions! Here's how you can help:

1. 🍴 Fork the repository
2. 🌿 Create a feature branch (` + "`git checkout -b feature/amazing-feature`" + `)
3. 💾 Commit your changes (` + "`git commit -m 'Add some amazing feature'`" + `)
4. 📤 Push to the branch (` + "`git push origin feature/amazing-feature`" + `)
5. 🔄 Open a Pull Request

### Development Guidelines

- 📝 Follow the existing code style
- ✅ Add tests for new features
- 📚 Update documentation as needed
- 🔍 Ensure all tests pass before submitting

## 📝 License

This project is licensed under the MIT License - see the [LICENSE](LICENSE) file for details.

## 💬 Support

- 🐛 Issues: [GitHub Issues](https://github.com/{{github_user}}/{{repo_name}}/issues)
- 📖 Documentation: [Wiki](https://github.com/{{github_user}}/{{repo_name}}/wiki)

---

<div align="center">

**⭐ Star this repository if you find it helpful! ⭐**

Made with ❤️ by [{{github_user}}](https://github.com/{{github_user}})

</div>
`

const webPreview = `
![Project Preview](https://via.placeholder.com/800x400/667eea/ffffff?text=Add+Your+Project+Screenshot+Here)

> 🎯 **Live Demo:** [View Demo](https://your-demo-url.com) | 📖 **Documentation:** [Read Docs](https://your-docs-url.com)
`
