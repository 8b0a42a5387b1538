package server

// HomePage is the homepage template. It carries a contact form whose
// company email input is required, mirroring the production site.
const HomePage = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            max-width: 800px;
            margin: 50px auto;
            padding: 20px;
            background: #f5f5f5;
        }
        .container {
            background: white;
            padding: 30px;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .hero { min-height: 900px; }
        h1 { color: #333; margin-bottom: 10px; }
        label { display: block; margin-top: 16px; color: #333; }
        input { width: 100%; padding: 8px; box-sizing: border-box; }
        button {
            margin-top: 20px;
            background: #4285f4;
            color: white;
            border: none;
            padding: 12px 24px;
            border-radius: 4px;
            cursor: pointer;
            font-size: 16px;
        }
        .notice { color: #188038; }
    </style>
</head>
<body>
    <div class="container hero">
        <h1>{{.Title}}</h1>
        <p>Scroll down to get in touch.</p>
    </div>
    <div class="container" id="contact">
        <h2>Contact us</h2>
        {{if .Submitted}}<p class="notice">Thanks, we will be in touch.</p>{{end}}
        <form method="post" action="/contact">
            <label for="first_name">First name*</label>
            <input id="first_name" name="first_name" type="text" required>

            <label for="last_name">Last name*</label>
            <input id="last_name" name="last_name" type="text" required>

            <label for="company_email">Company email*</label>
            <input id="company_email" name="company_email" type="email" required>

            <button type="submit">Submit</button>
        </form>
    </div>
</body>
</html>
`
