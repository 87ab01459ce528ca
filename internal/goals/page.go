package goals

import (
	"html/template"
	"io"
)

var pageTmpl = template.Must(template.New("index").Parse(`
    <html>
        <head>
            <title>{{.Goal}}</title>
            <link rel='stylesheet' href='style.css'>
        </head>
        <body>
            <h1 class='title'>Learning DevOps From Scratch</h1>
            <h3 class='subtitle'>Docker</h3>
            <p>Learn how to containerize applications</p>
            <h3 class='subtitle'>Kubernetes</h3>
            <p>Learn how to orchestrate containers</p>
            <h3 class='subtitle'>CI/CD</h3>
            <p>Learn how to automate the deployment process</p>
        </body>
    </html>
    `))

type pageData struct {
	Goal string
}

// RenderPage writes the index page with goal as its title.
func RenderPage(w io.Writer, goal string) error {
	return pageTmpl.Execute(w, pageData{Goal: goal})
}
